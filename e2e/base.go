package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"

	"confgw/acl"
	"confgw/domain"
	"confgw/engine/memory"
	"confgw/repositories"
	"confgw/runtime"
	"confgw/runtime/workers"
	"confgw/storage"
)

// BaseSuite runs the whole gateway in-process: a real orchestrator and
// policy store over the in-memory engine harness.
type BaseSuite struct {
	suite.Suite
	Config Config

	db       *badger.DB
	Policies *repositories.PolicyStore
	Factory  *memory.Factory
	Resolver *memory.Resolver
	Dialer   *memory.Dialer
	Orch     *runtime.Orchestrator

	cancel context.CancelFunc
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	_ = godotenv.Load()
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest assembles a fresh gateway for every scenario.
func (s *BaseSuite) SetupTest() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	s.Require().NoError(err)
	s.db = db

	s.Policies = repositories.NewPolicyStore(db, log)
	s.Factory = memory.NewFactory()
	s.Resolver = memory.NewResolver(memoryRoute())
	s.Dialer = memory.NewDialer()

	sup := workers.NewSupervisor(log, 50*time.Millisecond)
	s.Orch = runtime.NewOrchestrator(log,
		runtime.Settings{
			RingAcceptDelay: s.Config.RingDelay,
			ContactHost:     "gw.example.org",
		},
		runtime.Deps{
			ACL:        acl.NewEngine(s.Policies),
			Files:      storage.NewFileStore(s.T().TempDir(), log),
			Rooms:      s.Factory,
			Resolver:   s.Resolver,
			Dialer:     s.Dialer,
			Supervisor: sup,
		})
	sup.Add(workers.NewStatsReporter(log, s.Orch, s.Config.StatsInterval))

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.Orch.Start(ctx)
}

func (s *BaseSuite) TearDownTest() {
	s.Orch.Stop()
	s.cancel()
	s.Require().NoError(s.db.Close())
}

func memoryRoute() domain.Route {
	return domain.Route{Address: "10.0.0.1", Port: 5060, Transport: "tcp"}
}

// Step prints a colorized scenario step header in the test log.
func (s *BaseSuite) Step(format string, args ...any) {
	header := fmt.Sprintf("  ====== %s ======", fmt.Sprintf(format, args...))
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}
