package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/skillquest/internal/api"
	"github.com/abhisek/skillquest/internal/app"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the API client, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	username, err := st.Username(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	return app.Run(app.Options{
		Service:  api.New(resolveBaseURL(cmd)),
		Store:    st,
		Username: username,
	})
}
