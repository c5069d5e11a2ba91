package app

import (
	"net/http"

	"github.com/playershyan/iSafe-sub001/internal/config"
	"github.com/playershyan/iSafe-sub001/internal/db"
	matchingdomain "github.com/playershyan/iSafe-sub001/internal/domain/matching"
	missingdomain "github.com/playershyan/iSafe-sub001/internal/domain/missing"
	persondomain "github.com/playershyan/iSafe-sub001/internal/domain/person"
	searchdomain "github.com/playershyan/iSafe-sub001/internal/domain/search"
	shelterdomain "github.com/playershyan/iSafe-sub001/internal/domain/shelter"
	matchrepo "github.com/playershyan/iSafe-sub001/internal/repository/postgres/match"
	missingrepo "github.com/playershyan/iSafe-sub001/internal/repository/postgres/missing"
	personrepo "github.com/playershyan/iSafe-sub001/internal/repository/postgres/person"
	searchrepo "github.com/playershyan/iSafe-sub001/internal/repository/postgres/search"
	shelterrepo "github.com/playershyan/iSafe-sub001/internal/repository/postgres/shelter"
	"github.com/playershyan/iSafe-sub001/internal/transport/httpserver"
	"github.com/playershyan/iSafe-sub001/internal/transport/httpserver/handler"
	"github.com/playershyan/iSafe-sub001/pkg/logger"
	"gorm.io/gorm"
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

	shelters := shelterdomain.NewService(shelterrepo.NewPostgres(dbConn))
	persons := persondomain.NewService(personrepo.NewPostgres(dbConn), shelterrepo.NewPostgres(dbConn))
	reports := missingdomain.NewService(missingrepo.NewPostgres(dbConn))
	finder := matchingdomain.NewFinder(missingrepo.NewPostgres(dbConn), cfg.Matching, log)
	recorder := matchingdomain.NewRecorder(matchrepo.NewPostgres(dbConn))
	search := searchdomain.NewService(searchrepo.NewPostgres(dbConn), cfg.Search)

	handlers := handler.New(shelters, persons, reports, finder, recorder, search, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

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
