package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"opendid/internal/access"
	accessstore "opendid/internal/access/store"
	"opendid/internal/events"
	jwttoken "opendid/internal/jwt_token"
	"opendid/internal/platform/config"
	"opendid/internal/platform/httpserver"
	"opendid/internal/platform/kafka"
	"opendid/internal/platform/logger"
	"opendid/internal/platform/metrics"
	"opendid/internal/platform/middleware"
	"opendid/internal/platform/postgres"
	redisclient "opendid/internal/platform/redis"
	"opendid/internal/registry"
	"opendid/internal/registry/handler"
	registrymetrics "opendid/internal/registry/metrics"
	"opendid/pkg/platform/httputil"
	authmw "opendid/pkg/platform/middleware/auth"
	"opendid/pkg/platform/middleware/metadata"
	"opendid/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// infra holds the optional external connections.
type infra struct {
	db    *sql.DB
	redis *redisclient.Client
	kafka *kafka.Client
}

func (i *infra) close() {
	if i.kafka != nil {
		i.kafka.Close()
	}
	if i.redis != nil {
		_ = i.redis.Close()
	}
	if i.db != nil {
		_ = i.db.Close()
	}
}

func connect(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	in := &infra{}
	needsDB := cfg.Registry.StorageBackend == "postgres" || cfg.Registry.RoleBackend == "postgres"
	if needsDB {
		db, err := postgres.Open(ctx, postgres.Config{
			URL:             cfg.Database.URL,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnectTimeout:  cfg.Database.ConnectTimeout,
		}, log)
		if err != nil {
			return nil, err
		}
		in.db = db
		if err := postgres.Migrate(ctx, db); err != nil {
			in.close()
			return nil, err
		}
	}
	if cfg.Registry.RoleBackend == "redis" {
		rc, err := redisclient.New(ctx, cfg.Redis, cfg.Database.ConnectTimeout, log)
		if err != nil {
			in.close()
			return nil, err
		}
		in.redis = rc
	}
	kc, err := kafka.New(ctx, kafka.Config{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
	if err != nil {
		in.close()
		return nil, err
	}
	if kc != nil {
		if err := kc.EnsureTopic(ctx, cfg.Kafka.Partitions, cfg.Kafka.ReplicationFactor); err != nil {
			kc.Close()
			in.close()
			return nil, err
		}
		in.kafka = kc
	}
	return in, nil
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	in, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer in.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	eventLog := events.NewInMemoryLog(events.WithCapacity(cfg.Events.LogCapacity))
	eventMetrics := events.NewMetrics(reg)
	pubOpts := []events.Option{events.WithLogger(log), events.WithMetrics(eventMetrics)}
	if cfg.Events.Buffer > 0 {
		pubOpts = append(pubOpts, events.WithAsyncBuffer(cfg.Events.Buffer))
	}
	publisher := events.NewPublisher(eventLog, pubOpts...)
	defer publisher.Close()

	var roleStore access.Store
	switch cfg.Registry.RoleBackend {
	case "postgres":
		roleStore = accessstore.NewPostgres(in.db)
	case "redis":
		roleStore = accessstore.NewRedis(in.redis.Client)
	default:
		roleStore = accessstore.NewInMemory()
	}
	roles := access.New(roleStore,
		access.WithLogger(log),
		access.WithEmitter(publisher),
		access.WithStrictRoles(cfg.Registry.StrictRoles),
	)

	factory := registry.NewFactory(in.db, publisher, log)
	var handles registry.Handles
	if cfg.Registry.StorageBackend == "postgres" {
		handles, err = factory.Attach(cfg.Registry.StoreNamespace)
	} else {
		handles, err = factory.Handles(registry.BackendMemory)
	}
	if err != nil {
		return err
	}

	orchestrator := registry.New(roles,
		registry.WithLogger(log),
		registry.WithEmitter(publisher),
		registry.WithMetrics(registrymetrics.New(reg)),
		registry.WithPolicy(registry.DefaultPolicy(cfg.Registry.RestrictRoleGrants)),
	)
	if err := orchestrator.Initialize(ctx, cfg.Registry.DeployerAddress, handles); err != nil {
		return fmt.Errorf("initialize registry: %w", err)
	}

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer)
	r := newRouter(routerDeps{
		registry:       orchestrator,
		stores:         factory,
		events:         publisher,
		validator:      jwttoken.NewJWTServiceAdapter(jwtService),
		gatherer:       reg,
		metrics:        metrics.New(reg),
		ready:          readiness(in),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         log,
	})

	srv := httpserver.New(cfg.Server.Addr, r)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting opendid registry", "addr", cfg.Server.Addr, "deployer", cfg.Registry.DeployerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	if in.kafka != nil {
		relay := events.NewRelay(eventLog, events.NewKafkaSink(in.kafka, in.kafka.Topic()),
			events.WithRelayInterval(cfg.Events.RelayInterval),
			events.WithRelayLogger(log),
			events.WithRelayMetrics(eventMetrics),
		)
		g.Go(func() error {
			if err := relay.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type routerDeps struct {
	registry       handler.Registry
	stores         handler.StoreFactory
	events         handler.EventLister
	validator      authmw.TokenValidator
	gatherer       prometheus.Gatherer
	metrics        *metrics.Metrics
	ready          http.HandlerFunc
	requestTimeout time.Duration
	logger         *slog.Logger
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		metadata.ClientMetadata,
		requesttime.Middleware,
		middleware.Logger(d.logger, d.metrics),
		middleware.Recovery(d.logger),
	)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", d.ready)
	r.Handle("/metrics", metrics.Handler(d.gatherer))
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(d.requestTimeout), middleware.ContentTypeJSON)
		auth := authmw.RequireAuth(d.validator, d.logger)
		handler.New(d.registry, d.stores, d.events, auth, d.logger).Register(r)
	})
	return r
}

func readiness(in *infra) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := map[string]string{}
		ready := true
		check := func(name string, err error) {
			if err != nil {
				checks[name] = err.Error()
				ready = false
				return
			}
			checks[name] = "ok"
		}
		if in.db != nil {
			check("postgres", in.db.PingContext(ctx))
		}
		if in.redis != nil {
			check("redis", in.redis.Health(ctx))
		}
		if in.kafka != nil {
			check("kafka", in.kafka.Health(ctx))
		}
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, status, checks)
	}
}
