package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/app"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
	"github.com/raneesh-edsmartly/socratic/internal/config"
	"github.com/raneesh-edsmartly/socratic/internal/logging"
	"github.com/raneesh-edsmartly/socratic/internal/store"
)

// runApp loads configuration, opens the store, builds dependencies,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		cfg.APIBaseURL = u
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := api.New(cfg.APIBaseURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(logger),
	)

	sessions := st.SessionRepo()

	return app.Run(app.Options{
		API:       client,
		Auth:      auth.NewStore(client, sessions),
		Sessions:  sessions,
		Attempts:  st.AttemptRepo(),
		Logger:    logger,
		QuizTimer: cfg.QuizTimer,
	})
}
