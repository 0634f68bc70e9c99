// Command github-models fetches and displays models from the GitHub
// marketplace listing API, caching each page locally.
//
// Example:
//
//	github-models -m DeepSeek -f json -o models.json -d -cache-timeout 7200
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/s2005/github-models-scraper/pkg/cache"
	"github.com/s2005/github-models-scraper/pkg/client"
	"github.com/s2005/github-models-scraper/pkg/config"
	"github.com/s2005/github-models-scraper/pkg/logging"
	"github.com/s2005/github-models-scraper/pkg/pagination"
	"github.com/s2005/github-models-scraper/pkg/render"
)

func main() {
	var (
		output       string
		modelFamily  string
		format       string
		debug        bool
		cacheDir     string
		cacheTimeout int
		baseURL      string
		cacheBackend string
		redisAddr    string
		metricsAddr  string
	)

	flag.StringVar(&output, "output", "", "Output JSON file path")
	flag.StringVar(&output, "o", "", "Output JSON file path (shorthand)")
	flag.StringVar(&modelFamily, "model-family", "", "Filter by model family (e.g. DeepSeek)")
	flag.StringVar(&modelFamily, "m", "", "Filter by model family (shorthand)")
	flag.StringVar(&format, "format", "table", "Output format: table or json")
	flag.StringVar(&format, "f", "table", "Output format (shorthand)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&debug, "d", false, "Enable debug logging (shorthand)")
	flag.StringVar(&cacheDir, "cache-dir", ".cache", "Cache directory path")
	flag.IntVar(&cacheTimeout, "cache-timeout", 3600, "Cache timeout in seconds")
	flag.StringVar(&baseURL, "base-url", config.DefaultBaseURL, "Marketplace listing endpoint")
	flag.StringVar(&cacheBackend, "cache-backend", config.BackendFile, "Page cache backend: file or redis")
	flag.StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address for the redis cache backend")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")
	flag.Parse()

	level := logging.LevelInfo
	if debug {
		level = logging.LevelDebug
	}
	logger := logging.Setup(logging.Config{
		Level:  level,
		Pretty: true,
		Output: os.Stderr,
	})

	if format != "table" && format != "json" {
		logger.Fatal().Str("format", format).Msg("Format must be 'table' or 'json'")
	}

	cfg := config.DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.ModelFamily = modelFamily
	cfg.CacheDir = cacheDir
	cfg.CacheTimeout = time.Duration(cacheTimeout) * time.Second
	cfg.CacheBackend = cacheBackend
	cfg.RedisAddr = redisAddr

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	var store cache.Store
	switch cfg.CacheBackend {
	case config.BackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, logging.NewLogger("cache"))
	default:
		store = cache.NewFileStore(cfg.CacheDir, logging.NewLogger("cache"))
	}

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				logger.Error().Err(err).Msg("Metrics server failed")
			}
		}()
		logger.Info().Str("addr", metricsAddr).Msg("Serving Prometheus metrics")
	}

	fetcher, err := client.New(cfg, store, logging.NewLogger("fetcher"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create marketplace client")
	}

	logger.Info().Str("model_family", modelFamily).Msg("Fetching models from GitHub marketplace")

	models, err := pagination.All(ctx, fetcher, logging.NewLogger("pagination"))
	if err != nil {
		// Partial results are still presented.
		logger.Warn().Err(err).Int("collected", len(models)).Msg("Run completed partially")
	}

	if len(models) == 0 {
		logger.Warn().Msg("No models found")
		return
	}

	if format == "table" {
		if err := render.Table(os.Stdout, models); err != nil {
			logger.Error().Err(err).Msg("Failed to render table")
		}
	}

	if output != "" {
		if err := render.WriteJSON(output, models); err != nil {
			logger.Error().Err(err).Str("path", output).Msg("Failed to write output file")
		} else {
			logger.Info().Str("path", output).Msg("Data saved")
		}
	}

	lastPage := 0
	for _, m := range models {
		if m.Page > lastPage {
			lastPage = m.Page
		}
	}
	logger.Info().Msg(fmt.Sprintf("Found %d models across %d pages", len(models), lastPage))
}
