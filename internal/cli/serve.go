package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/pkg/api"
	"github.com/matzehuels/mayanum/pkg/cache"
	"github.com/matzehuels/mayanum/pkg/pipeline"
)

// DefaultAddr is the listen address of the serve command.
const DefaultAddr = ":8080"

// serveOptions holds the flags of the serve command.
type serveOptions struct {
	addr      string
	redisAddr string
	mongoURI  string
	cacheTTL  time.Duration
	entries   int
}

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOptions{addr: DefaultAddr, cacheTTL: cache.TTLArtifact, entries: cache.DefaultMemoryEntries}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter over HTTP",
		Long: `Start the HTTP API. Rendered artifacts are cached in memory unless a
Redis address or MongoDB URI is given.

Endpoints:
  GET /healthz
  GET /api/v1/convert?number=N
  GET /api/v1/date?date=DD-MM-YYYY
  GET /api/v1/layout?number=N
  GET /api/v1/render?number=N&format=svg&size=small
  GET /api/v1/presets?number=N`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyServerConfig(cmd, &opts); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "cache artifacts in Redis at this address")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "cache artifacts in MongoDB at this URI")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "artifact cache expiry")
	cmd.Flags().IntVar(&opts.entries, "cache-entries", opts.entries, "in-memory cache capacity")

	return cmd
}

func (c *CLI) applyServerConfig(cmd *cobra.Command, opts *serveOptions) error {
	srv := c.fileCfg.Server
	applyStringConfig(cmd, "addr", &opts.addr, srv.Addr)
	applyStringConfig(cmd, "redis-addr", &opts.redisAddr, srv.RedisAddr)
	applyStringConfig(cmd, "mongo-uri", &opts.mongoURI, srv.MongoURI)
	if cmd.Flags().Changed("cache-ttl") {
		return nil
	}
	ttl, err := srv.TTL(opts.cacheTTL)
	if err != nil {
		return err
	}
	opts.cacheTTL = ttl
	return nil
}

func (c *CLI) runServe(ctx context.Context, opts serveOptions) error {
	if opts.redisAddr != "" && opts.mongoURI != "" {
		return fmt.Errorf("use either --redis-addr or --mongo-uri, not both")
	}

	backend, err := c.serverCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := c.serverRunner(backend, opts)
	defer runner.Close()

	return api.New(runner, c.Logger).ListenAndServe(ctx, opts.addr)
}

// serverRunner builds the API runner. Every backend expires artifacts
// after the configured cache TTL.
func (c *CLI) serverRunner(backend cache.Cache, opts serveOptions) *pipeline.Runner {
	runner := pipeline.NewRunner(backend, cache.NewScopedKeyer(nil, appName+":"), c.Logger)
	runner.TTL = opts.cacheTTL
	return runner
}

// serverCache picks the artifact cache backend for the server.
func (c *CLI) serverCache(ctx context.Context, opts serveOptions) (cache.Cache, error) {
	switch {
	case opts.redisAddr != "":
		c.Logger.Info("cache", "backend", "redis", "addr", opts.redisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
	case opts.mongoURI != "":
		c.Logger.Info("cache", "backend", "mongo")
		return cache.NewMongoCache(ctx, cache.MongoConfig{URI: opts.mongoURI})
	default:
		c.Logger.Debug("cache", "backend", "memory", "entries", opts.entries, "ttl", opts.cacheTTL)
		return cache.NewMemoryCache(opts.entries, opts.cacheTTL), nil
	}
}
