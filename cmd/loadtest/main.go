package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-posts/internal/adapter"
	"github.com/MKhiriev/go-posts/internal/loadtest"
	"github.com/MKhiriev/go-posts/internal/logger"
)

type options struct {
	address     string
	token       string
	posts       int
	concurrency int
	seed        uint64
	timeout     time.Duration
	logLevel    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Run the post lifecycle against a posts server and report latencies",
		Long: `loadtest creates a batch of random posts, reads them back, updates,
lists and deletes them, checking every response. Latency statistics of each
operation are printed when the run succeeds.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.address, "address", "a", "127.0.0.1:8080", "server address")
	flags.StringVarP(&opts.token, "token", "t", "loadtest", "bearer token of protected calls")
	flags.IntVarP(&opts.posts, "posts", "n", 100, "posts per run")
	flags.IntVarP(&opts.concurrency, "concurrency", "c", 8, "in-flight requests per phase")
	flags.Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "random seed of the generated posts")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout of a single request")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log := logger.NewLogger("loadtest", logger.WithLevel(level))

	api, err := adapter.NewHTTPPostsAPI(opts.address, opts.timeout, log)
	if err != nil {
		return err
	}
	api.SetToken(opts.token)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	version, err := api.Version(ctx)
	if err != nil {
		return fmt.Errorf("server is not reachable: %w", err)
	}
	log.Info().Str("version", version).Uint64("seed", opts.seed).Msg("starting load test")

	runner := loadtest.NewRunner(api, loadtest.Config{
		Posts:       opts.posts,
		Concurrency: opts.concurrency,
		Seed:        opts.seed,
	}, log)

	summaries, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	return loadtest.WriteReport(cmd.OutOrStdout(), summaries)
}

