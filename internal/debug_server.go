package internal

import (
	"fmt"
	"html/template"
	"net/http"
	"sort"

	"confgw/repositories"
)

const policyPage = `<!DOCTYPE html>
<html>
<head><title>Room access policies</title>
<style>
body { font-family: monospace; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 4px 10px; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h2>Room access policies</h2>
<table>
<tr><th>Room</th><th>Mode</th><th>Allow</th><th>Deny</th></tr>
{{range .}}<tr><td>{{.Room}}</td><td>{{.Mode}}</td><td>{{.Allow}}</td><td>{{.Deny}}</td></tr>
{{end}}</table>
</body>
</html>`

type policyRow struct {
	Room  string
	Mode  string
	Allow []string
	Deny  []string
}

// StartDebugServer serves a read-only HTML view of the policy store,
// for operator inspection only.
func StartDebugServer(store *repositories.PolicyStore, port int) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.New("policies").Parse(policyPage))

	mux.HandleFunc("/policies", func(w http.ResponseWriter, r *http.Request) {
		records, err := store.List()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		rows := make([]policyRow, 0, len(records))
		for room, rec := range records {
			rows = append(rows, policyRow{Room: room, Mode: rec.Mode, Allow: rec.Allow, Deny: rec.Deny})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Room < rows[j].Room })
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, rows)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}
