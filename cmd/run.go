package cmd

import (
	"github.com/abhisek/pathwise/internal/app"
	"github.com/spf13/cobra"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	st, events := env.openEvents(cmd)
	if st != nil {
		defer st.Close()
	}

	env.log.Info("starting tui", "seed", env.cfg.Seed, "catalog", env.cfg.CatalogPath)
	return app.Run(app.Options{
		Catalog:   env.cat,
		Runner:    env.newRunner(events),
		Responder: env.newResponder(events),
		Log:       env.log,
	})
}
