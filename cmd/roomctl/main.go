// roomctl inspects and edits the per-room access policies stored in the
// gateway's Badger database.
//
//	roomctl list
//	roomctl set <room> [-mode allow,deny|deny,allow] [-allow p1,p2] [-deny p1,p2]
//	roomctl get <room>
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"confgw/domain"
	"confgw/repositories"
)

type config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
}

func main() {
	_ = godotenv.Load()
	var cfg config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if len(os.Args) < 2 {
		usage()
	}

	command := os.Args[1]
	readOnly := command != "set"
	db, err := openDB(cfg.BadgerFilepath, readOnly)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	store := repositories.NewPolicyStore(db, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	switch command {
	case "list":
		listPolicies(store)
	case "get":
		if len(os.Args) < 3 {
			usage()
		}
		getPolicy(store, os.Args[2])
	case "set":
		if len(os.Args) < 3 {
			usage()
		}
		setPolicy(store, os.Args[2], os.Args[3:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: roomctl list | get <room> | set <room> [-mode m] [-allow p,..] [-deny p,..]")
	os.Exit(2)
}

func openDB(path string, readOnly bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil)
	if readOnly {
		// BypassLockGuard allows opening while the gateway holds the lock.
		opts = opts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	return badger.Open(opts)
}

func listPolicies(store *repositories.PolicyStore) {
	records, err := store.List()
	if err != nil {
		log.Fatalf("Listing policies failed: %v", err)
	}
	rooms := make([]string, 0, len(records))
	for room := range records {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(" Room access policies "))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Room", "Mode", "Allow", "Deny"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, room := range rooms {
		rec := records[room]
		table.Append([]string{room, rec.Mode, strings.Join(rec.Allow, " "), strings.Join(rec.Deny, " ")})
	}
	table.Render()
}

func getPolicy(store *repositories.PolicyStore, room string) {
	rec, ok, err := store.Get(roomAddress(room))
	if err != nil {
		log.Fatalf("Policy lookup failed: %v", err)
	}
	if !ok {
		fmt.Printf("%s: no stored policy (default allow)\n", room)
		return
	}
	fmt.Printf("%s: mode=%s allow=%v deny=%v\n", room, rec.Mode, rec.Allow, rec.Deny)
}

func setPolicy(store *repositories.PolicyStore, room string, args []string) {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	mode := fs.String("mode", "deny,allow", "Policy mode: allow,deny or deny,allow")
	allow := fs.String("allow", "", "Comma separated allow patterns")
	deny := fs.String("deny", "", "Comma separated deny patterns")
	_ = fs.Parse(args)

	rec := repositories.PolicyRecord{
		Mode:  *mode,
		Allow: splitPatterns(*allow),
		Deny:  splitPatterns(*deny),
	}
	if err := store.Put(roomAddress(room), rec); err != nil {
		log.Fatalf("Storing policy failed: %v", err)
	}
	fmt.Println(color.Green.Render("Policy stored for " + room))
}

func roomAddress(s string) domain.RoomAddress {
	user, host, found := strings.Cut(s, "@")
	if !found {
		log.Fatalf("Room must be user@host, got %q", s)
	}
	return domain.RoomAddress{User: user, Host: host}
}

func splitPatterns(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
