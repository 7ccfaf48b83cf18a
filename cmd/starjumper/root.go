package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/starjumper/internal/classification"
	"github.com/KirkDiggler/starjumper/internal/config"
	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/orchestrators/world"
	"github.com/KirkDiggler/starjumper/internal/pkg/idgen"
	"github.com/KirkDiggler/starjumper/internal/redis"
	"github.com/KirkDiggler/starjumper/internal/repositories/worlds"
	"github.com/KirkDiggler/starjumper/internal/worldgen"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	redisAddr  string
	logLevel   string
	logFormat  string
	timeout    time.Duration

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "starjumper",
		Short: "Generate star-system worlds and subsectors",
		Long: `Starjumper generates worlds from seeded dice throws and prints each one as a
fixed-width summary line: name, hex, world profile, bases, trade classifications
and gas giant.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.redisAddr, "redis", "", "Redis endpoint for storing worlds (default in-memory)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Storage timeout")

	rootCmd.AddCommand(newWorldCmd(opts))
	rootCmd.AddCommand(newSubsectorCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newRollCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))

	return rootCmd
}

// load reads the config file, applies flag overrides and sets up logging.
func (o *globalOptions) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if o.redisAddr != "" {
		cfg.Redis.Endpoint = o.redisAddr
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}

	if _, err := config.SetupLogging(cmd.ErrOrStderr(), cfg.Logging); err != nil {
		return err
	}

	o.cfg = cfg
	return nil
}

// storageContext returns a context bounded by the storage timeout.
func (o *globalOptions) storageContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, o.timeout)
}

// newService wires the world catalog against Redis when an endpoint is
// configured and against process memory otherwise.
func (o *globalOptions) newService(ctx context.Context) (world.Service, func(), error) {
	generator, err := worldgen.NewGenerator(&worldgen.Config{
		Classifier: classification.NewRuleset(),
	})
	if err != nil {
		return nil, nil, err
	}

	repo, cleanup, err := o.newRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc, err := world.NewOrchestrator(&world.Config{
		Generator:   generator,
		Repository:  repo,
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return svc, cleanup, nil
}

func (o *globalOptions) newRepository(ctx context.Context) (worlds.Repository, func(), error) {
	rc := o.cfg.Redis
	if rc.Endpoint == "" {
		slog.Debug("Using in-memory world storage")
		return worlds.NewInMemory(), func() {}, nil
	}

	client, cleanup, err := o.newRedisClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	repo, err := worlds.NewRedis(&worlds.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	slog.Debug("Using redis world storage", "endpoint", rc.Endpoint, "db", rc.DB)
	return repo, cleanup, nil
}

// requireRedis fails when no endpoint is configured. Commands that read
// earlier runs call it, since the in-memory store starts empty.
func (o *globalOptions) requireRedis() error {
	if o.cfg.Redis.Endpoint == "" {
		return errors.FailedPrecondition("no redis endpoint configured; pass --redis or set redis.endpoint")
	}
	return nil
}

// newRedisClient connects to the configured endpoint and confirms the server
// answers before returning.
func (o *globalOptions) newRedisClient(ctx context.Context) (redis.Client, func(), error) {
	if err := o.requireRedis(); err != nil {
		return nil, nil, err
	}

	rc := o.cfg.Redis
	client, err := redis.NewClient(rc.Endpoint, &redis.Options{
		DB:         rc.DB,
		MaxRetries: rc.MaxRetries,
		UseTLS:     rc.UseTLS,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	if err := redis.Ping(ctx, client); err != nil {
		cleanup()
		return nil, nil, errors.Wrapf(err, "cannot reach redis at %s", rc.Endpoint)
	}

	return client, cleanup, nil
}
