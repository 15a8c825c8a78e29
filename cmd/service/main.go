package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/handlers/rest/bid_accept_post"
	"marketplace/internal/handlers/rest/bid_decline_post"
	"marketplace/internal/handlers/rest/bid_post"
	"marketplace/internal/handlers/rest/bids_get"
	"marketplace/internal/handlers/rest/checkpoint_post"
	"marketplace/internal/handlers/rest/delivery_offer_accept_post"
	"marketplace/internal/handlers/rest/delivery_offer_post"
	"marketplace/internal/handlers/rest/delivery_offers_get"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/listing_bidding_end_put"
	"marketplace/internal/handlers/rest/listing_close_post"
	"marketplace/internal/handlers/rest/listing_delete"
	"marketplace/internal/handlers/rest/listing_get"
	"marketplace/internal/handlers/rest/listing_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/partner_rating_get"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/handlers/rest/purchase_post"
	"marketplace/internal/handlers/rest/rating_post"
	"marketplace/internal/handlers/rest/tracking_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	"marketplace/internal/repository/memory"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

const serviceName = "marketplace"

func main() {
	bootLog := stdlog.New(os.Stderr, "", stdlog.LstdFlags)

	loaded, err := dotenv.Load(os.Args[1:])
	if err != nil {
		bootLog.Printf("failed to load .env file: %v", err)
		return
	}
	if !loaded {
		bootLog.Print("No .env file found, using system environment variables")
	}

	cfg, err := config.Load(config.BinaryService)
	if err != nil {
		bootLog.Printf("load config: %v", err)
		return
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(
		logger.NewField("storage", cfg.Storage.Driver),
	)

	mainLog.Info("starting marketplace application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, kafka.ParseBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	// ctx отменяется по сигналу, вместе с ним останавливаются фоновые задачи.
	businessApp, probes, closeStorage, err := initApplication(ctx, log, producer, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	metrics_system.StartSystemMetricsCollector(ctx, serviceName, metrics_system.DefaultCollectInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server, probes),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

// initApplication собирает бизнес-слой поверх выбранного драйвера хранилища.
func initApplication(
	ctx context.Context,
	log logger.Logger,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*application.Application, []healthcheck_head.Probe, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		businessApp, err := application.InitializeInMemoryApplication(ctx, log, memory.New(), producer, cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("business logic: %w", err)
		}
		return businessApp, nil, func() {}, nil
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database: %w", err)
	}

	if cfg.Storage.Migrate {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("database migrations: %w", err)
		}
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("business logic: %w", err)
	}
	return businessApp, []healthcheck_head.Probe{pool}, pool.Close, nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
	probes []healthcheck_head.Probe,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(log, isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(log, cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, probes...)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, serviceName)).Methods("GET")

	// публичные чтения
	router.Handle("/listings/{id}", listing_get.New(log, app.Listings)).Methods("GET")
	router.Handle("/listings/{id}/tracking", tracking_get.New(log, app.Fulfillment)).Methods("GET")
	router.Handle("/partners/{id}/rating", partner_rating_get.New(log, app.Ratings)).Methods("GET")

	withActor := auth.Middleware(log)

	router.Handle("/listings", withActor(listing_post.New(log, app.Listings))).Methods("POST")
	router.Handle("/listings/{id}", withActor(listing_delete.New(log, app.Listings))).Methods("DELETE")
	router.Handle("/listings/{id}/bidding-end", withActor(listing_bidding_end_put.New(log, app.Listings))).Methods("PUT")
	router.Handle("/listings/{id}/close", withActor(listing_close_post.New(log, app.Listings))).Methods("POST")

	router.Handle("/listings/{id}/bids", withActor(bid_post.New(log, app.Listings))).Methods("POST")
	router.Handle("/listings/{id}/bids", withActor(bids_get.New(log, app.Listings))).Methods("GET")
	router.Handle("/listings/{id}/bids/{bidId}/accept", withActor(bid_accept_post.New(log, app.Listings))).Methods("POST")
	router.Handle("/listings/{id}/bids/{bidId}/decline", withActor(bid_decline_post.New(log, app.Listings))).Methods("POST")

	router.Handle("/listings/{id}/purchase", withActor(purchase_post.New(log, app.Orders))).Methods("POST")
	router.Handle("/listings/{id}/order", withActor(order_get.New(log, app.Orders))).Methods("GET")

	router.Handle("/listings/{id}/delivery-offers", withActor(delivery_offer_post.New(log, app.Delivery))).Methods("POST")
	router.Handle("/listings/{id}/delivery-offers", withActor(delivery_offers_get.New(log, app.Delivery))).Methods("GET")
	router.Handle("/listings/{id}/delivery-offers/{offerId}/accept", withActor(delivery_offer_accept_post.New(log, app.Delivery))).Methods("POST")

	router.Handle("/listings/{id}/checkpoints", withActor(checkpoint_post.New(log, app.Fulfillment))).Methods("POST")
	router.Handle("/listings/{id}/rating", withActor(rating_post.New(log, app.Ratings))).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
