package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tolarian-archive/scryglass/internal/adapters/driven/analytics/sqlite"
	"github.com/tolarian-archive/scryglass/internal/adapters/driven/cache"
	configfile "github.com/tolarian-archive/scryglass/internal/adapters/driven/config/file"
	"github.com/tolarian-archive/scryglass/internal/adapters/driven/telegram"
	"github.com/tolarian-archive/scryglass/internal/adapters/driving/webhook"
	"github.com/tolarian-archive/scryglass/internal/connectors/scryfall"
	"github.com/tolarian-archive/scryglass/internal/core/services"
	"github.com/tolarian-archive/scryglass/internal/logger"
)

const shutdownTimeout = 10 * time.Second

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook server",
	Long: `Starts the HTTP server that receives Telegram webhook updates and
answers inline queries. The bot token is read from TELEGRAM_TOKEN.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides server.listen)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return errors.New("TELEGRAM_TOKEN is not set")
	}

	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.Debug("configuration loaded from %s", cfg.Path())

	// Scryfall search client.
	scryfallOpts := []scryfall.Option{}
	if baseURL := os.Getenv("SCRYFALL_API_URL"); baseURL != "" {
		scryfallOpts = append(scryfallOpts, scryfall.WithBaseURL(baseURL))
	}
	if order := cfg.GetString("search.order"); order != "" {
		scryfallOpts = append(scryfallOpts, scryfall.WithOrder(order))
	}
	source := scryfall.NewClient(scryfallOpts...)

	// Cursor and last-query caches.
	chunkSize := cfg.GetInt("search.chunk_size")
	if chunkSize <= 0 {
		chunkSize = services.DefaultChunkSize
	}
	capacity := cfg.GetInt("search.cursor_cache_size")
	if capacity <= 0 {
		capacity = cache.DefaultCapacity
	}
	cursors, err := cache.NewCursorCache(source, chunkSize, capacity)
	if err != nil {
		return fmt.Errorf("creating cursor cache: %w", err)
	}
	lastQuery := cache.NewLastQueryStore()

	// Core service.
	svcOpts := []services.Option{}
	// Zero disables the minimum length policy, so presence matters, not
	// just the value.
	if _, ok := cfg.Get("search.min_query_length"); ok {
		svcOpts = append(svcOpts, services.WithMinQueryLength(cfg.GetInt("search.min_query_length")))
	}
	if cacheTime := cfg.GetInt("telegram.cache_time"); cacheTime > 0 {
		svcOpts = append(svcOpts, services.WithCacheTime(cacheTime))
	}

	var analytics *sqlite.Store
	if path := cfg.GetString("analytics.path"); path != "" {
		analytics, err = sqlite.NewStore(path)
		if err != nil {
			return fmt.Errorf("opening analytics store: %w", err)
		}
		defer analytics.Close()
		logger.Info("recording searches to %s", analytics.Path())
		svcOpts = append(svcOpts, services.WithAnalytics(analytics))
	}

	service := services.NewInlineService(cursors, lastQuery, svcOpts...)

	// Bot API responder.
	telegramOpts := []telegram.Option{}
	if apiURL := os.Getenv("TELEGRAM_API_URL"); apiURL != "" {
		telegramOpts = append(telegramOpts, telegram.WithAPIURL(apiURL))
	}
	responder := telegram.NewClient(token, telegramOpts...)

	addr := listenAddr
	if addr == "" {
		addr = cfg.GetString("server.listen")
	}
	server := webhook.NewServer(addr, service, responder)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Policy knobs follow the config file while the server runs.
	go func() {
		err := cfg.Watch(ctx, func() {
			if _, ok := cfg.Get("search.min_query_length"); ok {
				service.SetMinQueryLength(cfg.GetInt("search.min_query_length"))
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("config watch stopped: %v", err)
		}
	}()

	if err := server.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
