package main

import (
	"fmt"
	"os"

	"geo-attend/internal/app"
	"geo-attend/internal/bootstrap"
	"geo-attend/internal/config"
	"geo-attend/internal/state"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(openStore).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is what a command works on: the configured store and the
// settings it came from.
type session struct {
	cfg   config.Config
	store *state.Store
	close func()
}

type opener func() (*session, error)

func openStore() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	infra, err := app.OpenInfra(cfg)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:   cfg,
		store: infra.Store(cfg),
		close: func() {
			infra.Close()
			_ = logger.Sync()
		},
	}, nil
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "geoattend",
		Short:         "Geofenced attendance from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newStatusCmd(open))
	root.AddCommand(newHistoryCmd(open))
	root.AddCommand(newOfficeCmd(open))
	root.AddCommand(newCheckCmd(open, "check-in", "Record arrival; must be inside the office radius"))
	root.AddCommand(newCheckCmd(open, "check-out", "Record departure from anywhere"))
	root.AddCommand(newWatchCmd(open))
	root.AddCommand(newDistanceCmd())
	root.AddCommand(newResetCmd(open))
	return root
}

// withSession opens the store for the duration of fn.
func withSession(open opener, fn func(s *session) error) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.close()
	return fn(s)
}
