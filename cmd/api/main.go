package main

import (
	"context"
	"os"
	"time"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/env"
	"github.com/Beka01247/menu-order/internal/parser"
	"github.com/Beka01247/menu-order/internal/queue"
	"github.com/Beka01247/menu-order/internal/ratelimiter"
	"github.com/Beka01247/menu-order/internal/repo"
	"github.com/Beka01247/menu-order/internal/service"
	"github.com/Beka01247/menu-order/internal/store/memory"
	"github.com/Beka01247/menu-order/internal/store/mongo"
	"github.com/Beka01247/menu-order/internal/worker"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "0.1.0"

//	@title			Menu Order
//	@description	API for browsing the menu, managing a cart and tracking orders
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath	/api/v1
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		mongo: mongoConfig{
			URI:      env.GetString("MONGO_URI", ""),
			Database: env.GetString("MONGO_DATABASE", "menuorder"),
			Timeout:  time.Second * 10,
		},
		rabbitMQ: rabbitMQConfig{
			URL:           env.GetString("RABBITMQ_URL", ""),
			MaxRetries:    env.GetInt("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:    time.Second * 2,
			PrefetchCount: env.GetInt("RABBITMQ_PREFETCH_COUNT", 10),
		},
		catalog: catalogConfig{
			Source:        env.GetString("CATALOG_SOURCE", catalogSourceSample),
			SpreadsheetID: env.GetString("CATALOG_SPREADSHEET_ID", ""),
			LoadDelay:     env.GetDuration("CATALOG_LOAD_DELAY", 0),
			LoadTimeout:   time.Minute,
		},
		googleCreds: env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	logger.Infow("starting menu-order", "version", version, "env", cfg.env)

	// rate limiter
	rateLimiter := ratelimiter.NewTokenBucketLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage
	var (
		storage     repo.Storage
		catalogRepo repo.CatalogRepository
		importRepo  repo.ImportTaskRepository
		auditRepo   repo.OrderStatusAuditRepository
	)
	if cfg.mongo.URI != "" {
		mongoStorage, err := mongo.New(mongo.Config{
			URI:      cfg.mongo.URI,
			Database: cfg.mongo.Database,
			Timeout:  cfg.mongo.Timeout,
		})
		if err != nil {
			logger.Fatalw("failed to connect to MongoDB", "error", err)
		}

		logger.Info("connected to MongoDB")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := mongoStorage.CreateIndexes(ctx); err != nil {
			logger.Warnw("failed to create indexes", "error", err)
		} else {
			logger.Info("MongoDB indexes created successfully")
		}
		cancel()

		storage = mongoStorage
		catalogRepo = mongo.NewCatalogRepository(mongoStorage.Database())
		importRepo = mongo.NewImportTaskRepository(mongoStorage.Database())
		auditRepo = mongo.NewOrderStatusAuditRepository(mongoStorage.Database())
	} else {
		logger.Warn("MONGO_URI not set, using in-memory storage")

		storage = memory.NewStorage()
		catalogRepo = memory.NewCatalogRepository(catalog.SampleItems())
		importRepo = memory.NewImportTaskRepository()
		auditRepo = memory.NewOrderStatusAuditRepository()
	}
	sessionRepo := memory.NewSessionRepository()

	// broker
	var broker queue.Broker
	if cfg.rabbitMQ.URL != "" {
		rabbit, err := queue.NewRabbitMQBroker(queue.Config{
			URL:           cfg.rabbitMQ.URL,
			MaxRetries:    cfg.rabbitMQ.MaxRetries,
			RetryDelay:    cfg.rabbitMQ.RetryDelay,
			PrefetchCount: cfg.rabbitMQ.PrefetchCount,
		})
		if err != nil {
			logger.Fatalw("failed to connect to RabbitMQ", "error", err)
		}

		logger.Info("connected to RabbitMQ")
		broker = rabbit
	} else {
		logger.Warn("RABBITMQ_URL not set, using in-process broker")
		broker = queue.NewMemoryBroker(cfg.rabbitMQ.MaxRetries, cfg.rabbitMQ.RetryDelay).WithLogger(logger)
	}

	var sheetsParser *parser.GoogleSheetsParser
	if cfg.googleCreds != "" {
		credsJSON, err := os.ReadFile(cfg.googleCreds)
		if err != nil {
			logger.Fatalw("failed to read Google credentials", "error", err)
		}

		sheetsParser, err = parser.New(parser.Config{
			CredentialsJSON: credsJSON,
		})
		if err != nil {
			logger.Fatalw("failed to create Google Sheets parser", "error", err)
		}
		logger.Info("Google Sheets parser initialized")
	} else {
		logger.Warn("Google credentials not provided, catalog import is disabled")
	}

	// catalog
	var catalogLoader catalog.Loader
	switch cfg.catalog.Source {
	case catalogSourceSample:
		catalogLoader = catalog.SampleLoader{Delay: cfg.catalog.LoadDelay}
	case catalogSourceMongo:
		catalogLoader = catalogRepo
	case catalogSourceSheets:
		if sheetsParser == nil || cfg.catalog.SpreadsheetID == "" {
			logger.Fatal("CATALOG_SOURCE=sheets requires GOOGLE_CREDENTIALS_PATH and CATALOG_SPREADSHEET_ID")
		}
		catalogLoader = sheetsParser.Source(cfg.catalog.SpreadsheetID)
	default:
		logger.Fatalw("unknown catalog source", "source", cfg.catalog.Source)
	}
	catalogStore := catalog.NewStore()

	// a nil *GoogleSheetsParser must not become a non-nil interface
	var importParser service.CatalogParser
	if sheetsParser != nil {
		importParser = sheetsParser
	}

	sessionService := service.NewSessionService(sessionRepo, logger)
	cartService := service.NewCartService(sessionRepo, catalogStore, logger)
	profileService := service.NewProfileService(sessionRepo, catalogStore, logger)

	orderService := service.NewOrderService(
		sessionRepo,
		auditRepo,
		broker,
		storage,
		logger,
	)

	importService := service.NewImportService(
		importRepo,
		catalogRepo,
		importParser,
		catalogStore,
		broker,
		storage,
		logger,
	)

	orderStatusWorker := worker.NewOrderStatusWorker(orderService, broker, logger)
	catalogImportWorker := worker.NewCatalogImportWorker(importService, broker, logger)

	app := &application{
		config:              cfg,
		logger:              logger,
		rateLimiter:         rateLimiter,
		storage:             storage,
		broker:              broker,
		catalog:             catalogStore,
		catalogLoader:       catalogLoader,
		sessionService:      sessionService,
		cartService:         cartService,
		orderService:        orderService,
		profileService:      profileService,
		importService:       importService,
		orderStatusWorker:   orderStatusWorker,
		catalogImportWorker: catalogImportWorker,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
