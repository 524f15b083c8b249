package app

import (
	"net/http"

	"gorm.io/gorm"

	"law-office-go/internal/config"
	"law-office-go/internal/db"
	"law-office-go/internal/domain/appointments"
	"law-office-go/internal/domain/auth"
	"law-office-go/internal/domain/clients"
	"law-office-go/internal/domain/gallery"
	"law-office-go/internal/domain/hearings"
	"law-office-go/internal/domain/payments"
	"law-office-go/internal/domain/processes"
	"law-office-go/internal/domain/stats"
	appointmentsrepo "law-office-go/internal/repository/postgres/appointments"
	authrepo "law-office-go/internal/repository/postgres/auth"
	clientsrepo "law-office-go/internal/repository/postgres/clients"
	hearingsrepo "law-office-go/internal/repository/postgres/hearings"
	paymentsrepo "law-office-go/internal/repository/postgres/payments"
	processesrepo "law-office-go/internal/repository/postgres/processes"
	statsrepo "law-office-go/internal/repository/postgres/stats"
	"law-office-go/internal/storage"
	"law-office-go/internal/transport/httpserver"
	"law-office-go/internal/transport/httpserver/handler"
	"law-office-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}
	if err := db.SeedAdmin(dbConn, log); err != nil {
		return nil, err
	}

	store, err := storage.NewDiskStore(cfg.Gallery.Dir)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	authService := auth.NewService(authrepo.NewPostgres(dbConn), tokens)
	appointmentsService := appointments.NewService(appointmentsrepo.NewPostgres(dbConn))
	clientsService := clients.NewService(clientsrepo.NewPostgres(dbConn), appointmentsService, log)
	processesService := processes.NewService(processesrepo.NewPostgres(dbConn))
	hearingsService := hearings.NewService(hearingsrepo.NewPostgres(dbConn))
	paymentsService := payments.NewService(paymentsrepo.NewPostgres(dbConn))
	statsService := stats.NewService(statsrepo.NewPostgres(dbConn), stats.NewMemoryCache(), cfg.Stats.CacheTTL)
	galleryService := gallery.NewService(store)

	handlers := handler.New(handler.Config{
		Auth:           authService,
		Clients:        clientsService,
		Processes:      processesService,
		Hearings:       hearingsService,
		Appointments:   appointmentsService,
		Payments:       paymentsService,
		Stats:          statsService,
		Gallery:        galleryService,
		MaxUploadBytes: int64(cfg.Gallery.MaxUploadMiB) << 20,
		Log:            log,
	})

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, authService, store.Dir(), log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
