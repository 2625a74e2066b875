package main

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ykhdr/crack-hash/common/logging"
	"github.com/ykhdr/crack-hash/config"
	"github.com/ykhdr/crack-hash/pkg/messages"
)

func (r *rootCmd) newHistoryCmd() *cobra.Command {
	var hash string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived scan outcomes for a hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.history(cmd.Context(), hash)
		},
	}
	cmd.Flags().StringVarP(&hash, "hash", "H", "", "target hash in hex")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}

// history prints archived outcomes newest first. Hashes are archived in
// lowercase, so the query is lowercased too.
func (r *rootCmd) history(ctx context.Context, hash string) error {
	cfg, err := config.InitializeConfig(r.configPath)
	if err != nil {
		return errors.Wrap(err, "initialize config")
	}
	store, closeFn, err := r.openStore(cfg.MongoConfig)
	if err != nil {
		return err
	}
	defer closeFn()

	outcomes, err := store.ListByHash(ctx, strings.ToLower(hash))
	if err != nil {
		return err
	}
	l := logging.ConsoleLogger(r.out)
	if len(outcomes) == 0 {
		l.Info().Str("hash", hash).Msg("no archived outcomes")
		r.code = exitOK
		return nil
	}
	for _, o := range outcomes {
		event := l.Info().
			Str("algorithm", o.Algorithm).
			Str("status", string(o.Status)).
			Uint64("attempts", o.Attempts).
			Str("elapsed", (time.Duration(o.ElapsedMs) * time.Millisecond).String()).
			Str("wordlist", o.Wordlist).
			Time("finished-at", o.FinishedAt)
		if o.Status == messages.StatusFound {
			event = event.Str("password", o.Password)
		}
		event.Msg("archived outcome")
	}
	r.code = exitOK
	return nil
}
