package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/scrollverse/metalbridge/db"
	"github.com/scrollverse/metalbridge/db/migrations"
	"github.com/scrollverse/metalbridge/ledger"
	"github.com/scrollverse/metalbridge/lib/logging"
	"github.com/scrollverse/metalbridge/lib/service"
	"github.com/scrollverse/metalbridge/lib/tokens"
	"github.com/scrollverse/metalbridge/lib/transport"
	"github.com/scrollverse/metalbridge/rabbitmq"
	"github.com/uptrace/bun/migrate"
)

// @title        ScrollVerse Precious Metal Bridge
// @version      1.0.0
// @description  Certification and provenance registry for tokenized precious metal assets.

// @BasePath  /

// @securitydefinitions.oauth2.password  OAuth2Password
// @tokenUrl                             /admin/tokens
// @schemes                              https http
func main() {

	c := &service.Config{}

	// Load configruation from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configrued log file
	logger := logging.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	// Migrate the DB
	startupCtx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// Init the ownership-token ledger
	ledgerCfg, err := ledger.LoadConfig()
	if err != nil {
		logger.Fatalf("Error loading ledger config: %v", err)
	}
	tokenLedger, err := ledger.InitTokenLedger(ledgerCfg)
	if err != nil {
		logger.Fatalf("Error initializing the %s token ledger: %v", ledgerCfg.LedgerType, err)
	}

	// If no RABBITMQ_URI was provided we will not attempt to create a client
	// No rabbitmq features will be available in this case.
	var rabbitmqClient rabbitmq.Client
	if c.RabbitMQUri != "" {
		rabbitmqClient, err = rabbitmq.Dial(c.RabbitMQUri,
			rabbitmq.WithLogger(logger),
			rabbitmq.WithEventExchange(c.RabbitMQEventExchange),
		)
		if err != nil {
			logger.Fatal(err)
		}

		// close the connection gently at the end of the runtime
		defer rabbitmqClient.Close()
	}

	svc := &service.BridgeService{
		Config:         c,
		DB:             dbConn,
		TokenLedger:    tokenLedger,
		Logger:         logger,
		EventPubSub:    service.NewPubsub(),
		RabbitMQClient: rabbitmqClient,
	}

	// Seed the registry settings and the admin's role grants on first run
	registry, err := svc.InitRegistry(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing registry: %v", err)
	}
	logger.Infof("Serving registry %s (%s)", registry.Name, registry.Symbol)

	//init echo server
	e := transport.InitEcho(c, logger)

	logMw := transport.CreateLoggingMiddleware(logger)
	// strict rate limit for the endpoints that mint tokens or issue credentials
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)

	secured := e.Group("", tokens.Middleware(c.JWTSecret), logMw)
	admin := e.Group("", tokens.AdminTokenMiddleware(c.AdminToken), logMw)

	transport.RegisterEndpoints(svc, e, secured, admin, strictRateLimitMiddleware, transport.CreateCacheClient())

	var backgroundWg sync.WaitGroup
	backGroundCtx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	//Start webhook subscription
	if svc.Config.WebhookUrl != "" {
		backgroundWg.Add(1)
		go func() {
			svc.StartWebhookSubscription(backGroundCtx, svc.Config.WebhookUrl)
			svc.Logger.Info("Webhook routine done")
			backgroundWg.Done()
		}()
	}
	//Start rabbit publisher
	if svc.RabbitMQClient != nil {
		backgroundWg.Add(1)
		go func() {
			err = svc.RabbitMQClient.StartPublishEvents(backGroundCtx, svc.SubscribeRegistryEvents)
			if err != nil {
				svc.Logger.Error(err)
				sentry.CaptureException(err)
			}

			svc.Logger.Info("Rabbit event publisher done")
			backgroundWg.Done()
		}()
	}

	//Start Prometheus server if necessary
	if svc.Config.EnablePrometheus {
		go transport.StartPrometheusEcho(logger, svc, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	<-backGroundCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	//Wait for graceful shutdown of background routines
	backgroundWg.Wait()
	svc.Logger.Info("Metal bridge exiting gracefully. Goodbye.")
}
