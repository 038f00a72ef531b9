// Package main is the entry point for the terminal booth browser.
// It fetches the directory from a running API server once and hands it to
// the interactive view.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/client"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		server  string
		timeout time.Duration
		logFile string
	)

	cmd := &cobra.Command{
		Use:           "browse",
		Short:         "Browse convention booths by fandom and zone",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The terminal is owned by the view, so diagnostics go to a file.
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			logger := slog.New(slog.NewJSONHandler(f, nil))

			c := client.New(server, &http.Client{})
			model := tui.New(c,
				tui.WithContext(cmd.Context()),
				tui.WithTimeout(timeout),
				tui.WithLogger(logger),
			)

			if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:5001", "base URL of the circle search API")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "timeout for loading the booth list")
	cmd.Flags().StringVar(&logFile, "log-file", filepath.Join(os.TempDir(), "circle-browse.log"), "file that receives diagnostic logs")

	return cmd
}
