package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/app"
)

// runApp loads configuration, opens the store, and launches the TUI.
// Providers are built inside the app once a key is available.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting eduvision", "version", version, "provider", cfg.Provider)

	return app.Run(app.Options{
		Config:    cfg,
		EventRepo: st.EventRepo(),
		Log:       log,
	})
}
