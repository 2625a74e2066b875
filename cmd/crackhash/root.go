package main

import (
	"context"
	"encoding/xml"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	commonamqp "github.com/ykhdr/crack-hash/common/amqp"
	"github.com/ykhdr/crack-hash/common/amqp/publisher"
	"github.com/ykhdr/crack-hash/common/logging"
	commonmongo "github.com/ykhdr/crack-hash/common/store/mongo"
	"github.com/ykhdr/crack-hash/config"
	"github.com/ykhdr/crack-hash/internal/hashcrack"
	"github.com/ykhdr/crack-hash/internal/hashcrack/cracker"
	"github.com/ykhdr/crack-hash/internal/hashcrack/digest"
	"github.com/ykhdr/crack-hash/internal/hashcrack/report"
	"github.com/ykhdr/crack-hash/internal/store/outcomestore"
	"github.com/ykhdr/crack-hash/pkg/messages"
)

const (
	exitOK       = 0
	exitFound    = exitOK
	exitNotFound = 1
)

var MongoNotConfiguredErr = errors.New("mongo is not configured")

type storeOpener func(cfg *commonmongo.Config) (outcomestore.OutcomeStore, func(), error)

type rootCmd struct {
	cmd        *cobra.Command
	out        io.Writer
	configPath string
	req        hashcrack.Request
	code       int
	openStore  storeOpener
}

func newRootCmd() *rootCmd {
	r := &rootCmd{out: os.Stdout, code: exitNotFound, openStore: openMongoStore}
	r.cmd = &cobra.Command{
		Use:           "crackhash",
		Short:         "Recover a plaintext from its MD5, SHA1 or SHA256 digest using a wordlist",
		Version:       "0.1.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd.Context())
		},
	}
	r.cmd.PersistentFlags().StringVarP(&r.configPath, "config", "c", "", "path to a KDL config file")
	flags := r.cmd.Flags()
	flags.StringVarP(&r.req.Algorithm, "algo", "a", "", "hash algorithm: md5, sha1 or sha256")
	flags.StringVarP(&r.req.Hash, "hash", "H", "", "target hash in hex")
	flags.StringVarP(&r.req.Wordlist, "wordlist", "w", "", "path to the wordlist, one candidate per line")
	for _, name := range []string{"algo", "hash", "wordlist"} {
		_ = r.cmd.MarkFlagRequired(name)
	}
	r.cmd.AddCommand(r.newHistoryCmd())
	return r
}

// execute runs the command and returns the process exit code: 0 only when
// the password was found.
func (r *rootCmd) execute() (int, error) {
	r.cmd.SetOut(r.out)
	if err := r.cmd.ExecuteContext(context.Background()); err != nil {
		l := logging.ConsoleLogger(r.out)
		l.Error().Err(err).Msg("error")
		return exitNotFound, err
	}
	return r.code, nil
}

func (r *rootCmd) run(ctx context.Context) error {
	// Format errors must surface before the config file or any broker is touched.
	if _, err := digest.Validate(r.req.Algorithm, r.req.Hash); err != nil {
		return err
	}
	cfg, err := config.InitializeConfig(r.configPath)
	if err != nil {
		return errors.Wrap(err, "initialize config")
	}
	reporters, cleanup, err := r.buildReporters(ctx, cfg, logging.ConsoleLogger(r.out))
	if err != nil {
		return err
	}
	defer cleanup()

	outcome, err := hashcrack.NewService(reporters, cfg.ProgressInterval).Run(ctx, r.req)
	if err != nil {
		return err
	}
	if outcome.Found() {
		r.code = exitFound
	}
	// EmptyInput is already rendered by the log reporter; only the exit code remains.
	return nil
}

func (r *rootCmd) buildReporters(ctx context.Context, cfg *config.CrackerConfig, console zerolog.Logger) (report.Multi, func(), error) {
	reporters := report.Multi{report.NewLogReporter(console)}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.AmqpConfig != nil {
		rep, closeFn, err := amqpReporter(ctx, cfg.AmqpConfig)
		if err != nil {
			return nil, nil, err
		}
		reporters = append(reporters, rep)
		closers = append(closers, closeFn)
	}
	if cfg.MongoConfig != nil {
		store, closeFn, err := r.openStore(cfg.MongoConfig)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		reporters = append(reporters, report.NewStoreReporter(store))
		closers = append(closers, closeFn)
	}
	return reporters, cleanup, nil
}

func amqpReporter(ctx context.Context, cfg *commonamqp.Config) (cracker.Reporter, func(), error) {
	conn, err := commonamqp.Dial(ctx, cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "connect to amqp")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errors.Wrap(err, "open amqp channel")
	}
	pubCfg := cfg.PublisherConfig
	if pubCfg == nil {
		pubCfg = &commonamqp.PublisherConfig{}
	}
	pub := publisher.New[messages.CrackEvent](ch, pubCfg.ToPublisherConfig(xml.Marshal, "application/xml"))
	return report.NewAmqpReporter(pub), func() {
		_ = ch.Close()
		_ = conn.Close()
	}, nil
}

func openMongoStore(cfg *commonmongo.Config) (outcomestore.OutcomeStore, func(), error) {
	if cfg == nil {
		return nil, nil, MongoNotConfiguredErr
	}
	client, err := commonmongo.NewClient(&cfg.ClientConfig)
	if err != nil {
		return nil, nil, err
	}
	store := outcomestore.NewOutcomeStore(client.Database(cfg.Database), cfg.Collection)
	return store, func() {
		_ = client.Disconnect(context.Background())
	}, nil
}
