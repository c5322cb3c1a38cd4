package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	eventapi "github.com/aliskhannn/hire-notifier/internal/api/handlers/event"
	notifapi "github.com/aliskhannn/hire-notifier/internal/api/handlers/notification"
	whatsappapi "github.com/aliskhannn/hire-notifier/internal/api/handlers/whatsapp"
	"github.com/aliskhannn/hire-notifier/internal/api/router"
	"github.com/aliskhannn/hire-notifier/internal/api/server"
	"github.com/aliskhannn/hire-notifier/internal/api/ws"
	"github.com/aliskhannn/hire-notifier/internal/config"
	"github.com/aliskhannn/hire-notifier/internal/metrics"
	eventmsg "github.com/aliskhannn/hire-notifier/internal/rabbitmq/handlers/event"
	"github.com/aliskhannn/hire-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/hire-notifier/internal/repository/audit"
	notifrepo "github.com/aliskhannn/hire-notifier/internal/repository/notification"
	userrepo "github.com/aliskhannn/hire-notifier/internal/repository/user"
	"github.com/aliskhannn/hire-notifier/internal/service/mailer"
	notifsvc "github.com/aliskhannn/hire-notifier/internal/service/notification"
	"github.com/aliskhannn/hire-notifier/internal/service/trigger"
	"github.com/aliskhannn/hire-notifier/internal/whatsapp"
	"github.com/aliskhannn/hire-notifier/internal/whatsapp/meow"
	"github.com/aliskhannn/hire-notifier/internal/worker"
	"github.com/aliskhannn/hire-notifier/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()
	clock := clockwork.NewRealClock()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewEventQueue(ch, cfg.RabbitMQ)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create event queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	auditRepo := audit.NewRepository(mongoClient.Database(cfg.Mongo.Database).Collection(cfg.Mongo.AuditCollection))
	if err = auditRepo.EnsureTTLIndex(ctx, cfg.Mongo.AuditTTL); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to prepare delivery audit collection")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	notifications := notifrepo.NewRepository(db)
	users := userrepo.NewRepository(db)

	// WhatsApp lifecycle
	tracker := whatsapp.NewTracker(clock, cfg.WhatsApp.PairingTTL)
	hub := ws.NewHub(tracker)

	manager := whatsapp.NewManager(
		tracker,
		meow.NewFactory(cfg.WhatsApp.StoreDir),
		meow.NewStorage(cfg.WhatsApp.StoreDir),
		whatsapp.Broadcasters{hub, m},
		clock,
		whatsapp.Options{
			InitTimeout:    cfg.WhatsApp.InitTimeout,
			ReconnectDelay: cfg.WhatsApp.ReconnectDelay,
			Retry:          cfg.WhatsApp.LifecycleRetry,
		},
	)

	gateway := whatsapp.NewGateway(tracker, manager, m, whatsapp.GatewayOptions{
		CountryCode:     cfg.WhatsApp.CountryCode,
		MediaTimeout:    cfg.WhatsApp.MediaTimeout,
		MaxMediaBytes:   cfg.WhatsApp.MaxMediaBytes,
		BulkConcurrency: cfg.WhatsApp.BulkConcurrency,
		BulkPause:       cfg.WhatsApp.BulkPause,
	})

	if cfg.WhatsApp.AutoStart {
		if err := manager.Start(ctx); err != nil {
			zlog.Logger.Warn().Err(err).Msg("whatsapp client did not start, use reconnect")
		}
	}

	// Fan-out
	service := notifsvc.NewService(
		notifications,
		users,
		mailer.New(users, emailClient),
		gateway,
		tracker,
		rdb,
		m,
		notifsvc.Options{TTL: cfg.Notifications.TTL, Retry: cfg.Retry, Clock: clock},
	)
	triggers := trigger.New(service, tracker)

	workers := worker.NewEventWorkers(q, eventmsg.NewHandler(triggers, m))
	go workers.Run(ctx, cfg.Retry, cfg.Workers.Count)

	pruner := worker.NewPruner(service, clock, cfg.Notifications.PruneInterval)
	go pruner.Run(ctx)

	r := router.New(router.Handlers{
		WhatsApp:     whatsappapi.NewHandler(tracker, manager, gateway, auditRepo, val),
		Notification: notifapi.NewHandler(service, val),
		Event:        eventapi.NewHandler(q, val, cfg.Retry),
		Hub:          hub,
		Metrics:      reg,
	})
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("server started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	hub.Close()
	manager.Close()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to disconnect from mongo")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
