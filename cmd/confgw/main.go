package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"confgw/acl"
	"confgw/engine/memory"
	"confgw/internal"
	"confgw/repositories"
	"confgw/runtime"
	"confgw/runtime/workers"
	"confgw/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages their lifecycle so every
// defer executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Stores & admission policy
	policies := repositories.NewPolicyStore(db, log)
	files := storage.NewFileStore(config.FileTransferDir, log)

	// 4. Engine harness
	// The in-memory engine stands in for the protocol stack until a real
	// transport binding is wired; sessions come from the dialer only.
	factory := memory.NewFactory()
	resolver := memory.NewResolver()
	dialer := memory.NewDialer()

	// 5. Supervision & orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, config.Settings(), runtime.Deps{
		ACL:        acl.NewEngine(policies),
		Files:      files,
		Rooms:      factory,
		Resolver:   resolver,
		Dialer:     dialer,
		Supervisor: sup,
	})
	sup.Add(workers.NewStatsReporter(log, orchestrator, config.StatsInterval))

	// 6. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator.Start(ctx)
	internal.StartDebugServer(policies, config.DebugPort)
	log.Info("Conference gateway started",
		"contact_host", config.ContactHost, "debug_port", config.DebugPort)

	// 7. Wait for stop
	<-ctx.Done()
	log.Info("Shutting down gracefully...")

	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
