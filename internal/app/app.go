// Package app wires the portfolio stack from a configuration. Both the
// web server and the CLI start from here.
package app

import (
	"database/sql"
	"fmt"

	"github.com/alimgiray/gfolio/internal/cache"
	"github.com/alimgiray/gfolio/internal/repositories"
	"github.com/alimgiray/gfolio/internal/services"
	"github.com/alimgiray/gfolio/pkg/config"
	"github.com/alimgiray/gfolio/pkg/database"
	"github.com/alimgiray/gfolio/pkg/logger"
)

type App struct {
	Config    *config.Config
	Cache     *cache.TTLCache
	GitHub    *services.GitHubService
	Portfolio *services.PortfolioService
	Export    *services.ExportService

	db *sql.DB
}

// New validates cfg and builds every service the front ends need.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{Config: cfg}

	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	a.Cache = cache.NewTTLCache(store, cfg.Portfolio.CacheTTL())

	client, err := services.NewGitHubClient(cfg.GitHub.Token, cfg.GitHub.BaseURL)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.GitHub = services.NewGitHubService(client, a.Cache, services.LoaderOptions{
		IncludeForks:    cfg.Portfolio.IncludeForks,
		IncludeArchived: cfg.Portfolio.IncludeArchived,
	})
	a.Portfolio = services.NewPortfolioService(a.GitHub, cfg.Portfolio)
	a.Export = services.NewExportService()
	return a, nil
}

func (a *App) openStore() (cache.Store, error) {
	switch a.Config.Cache.Driver {
	case config.CacheDriverSQLite:
		db, err := database.Open(a.Config.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache database: %w", err)
		}
		a.db = db
		logger.WithField("path", a.Config.Cache.Path).Info("using sqlite cache")
		return repositories.NewCacheEntryRepository(db), nil
	default:
		logger.Info("using in-memory cache")
		return cache.NewMemoryStore(), nil
	}
}

// Close releases the cache database, if one is open.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
