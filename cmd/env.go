package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/chat"
	"github.com/abhisek/pathwise/internal/config"
	"github.com/abhisek/pathwise/internal/logging"
	"github.com/abhisek/pathwise/internal/store"
)

// runtimeEnv is the configuration, catalogue and logger shared by every
// command.
type runtimeEnv struct {
	cfg config.Config
	cat *catalog.Catalog
	log *logging.Logger
}

// loadEnv reads PATHWISE_* settings, applies flag overrides, then loads the
// catalogue and builds the logger.
func loadEnv(cmd *cobra.Command) (*runtimeEnv, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath, _ = flags.GetString("catalog")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	log, err := logging.New(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &runtimeEnv{cfg: cfg, cat: cat, log: log}, nil
}

func (e *runtimeEnv) close() {
	e.log.Sync()
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openEvents opens the event log for recording. The log is optional: on
// failure it warns on stderr and returns nils.
func (e *runtimeEnv) openEvents(cmd *cobra.Command) (*store.Store, store.EventRepo) {
	s, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Event log unavailable:", err)
		e.log.Warn("event log unavailable", "error", err)
		return nil, nil
	}
	return s, s.EventRepo()
}

func (e *runtimeEnv) newRunner(events store.EventRepo) *analysis.Runner {
	gen := analysis.NewGenerator(e.cat, analysis.NewSource(e.cfg.Seed))
	return analysis.NewRunner(gen, e.cfg.AnalysisDelay, events, e.log)
}

// newResponder stacks the counselor: event log, then simulated latency,
// then the canned answers.
func (e *runtimeEnv) newResponder(events store.EventRepo) chat.Responder {
	var r chat.Responder = chat.NewCannedResponder(e.cat.Chat)
	r = chat.WithLatency(r, e.cfg.ChatMinDelay, e.cfg.ChatMaxDelay, analysis.NewSource(e.cfg.Seed))
	return chat.WithEvents(r, events, uuid.NewString(), e.log)
}
