package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/render"
	"github.com/alimgiray/gfolio/pkg/config"
	"github.com/alimgiray/gfolio/pkg/logger"
)

// Snapshot is the outcome of one portfolio load. A failed half keeps its
// error and leaves the other half intact.
type Snapshot struct {
	Username        string
	Profile         *models.Profile
	ProfileErr      error
	Repositories    []models.Repository
	RepositoriesErr error
	Languages       []string
}

// Cards runs the display pipeline for state over the loaded repositories.
func (s *Snapshot) Cards(state models.FilterState) []render.Card {
	if s.RepositoriesErr != nil {
		return render.ErrorCards()
	}
	return render.BuildCards(ApplyFilter(s.Repositories, state))
}

type PortfolioService struct {
	loader Loader
	cfg    config.PortfolioConfig
}

func NewPortfolioService(loader Loader, cfg config.PortfolioConfig) *PortfolioService {
	return &PortfolioService{
		loader: loader,
		cfg:    cfg,
	}
}

// Username is the GitHub user this portfolio belongs to.
func (s *PortfolioService) Username() string {
	return s.cfg.Username
}

// Load fetches the profile and the repository list concurrently. Neither
// load cancels the other; failures are logged and recorded on the snapshot.
func (s *PortfolioService) Load(ctx context.Context) *Snapshot {
	return s.load(ctx, s.loader.LoadProfile, s.loader.LoadRepositories)
}

// Refresh is Load with fresh upstream fetches, so the cache is restocked
// even while its entries are still valid. Loaders that cannot bypass
// their cache get a plain Load.
func (s *PortfolioService) Refresh(ctx context.Context) *Snapshot {
	refresher, ok := s.loader.(Refresher)
	if !ok {
		return s.Load(ctx)
	}
	return s.load(ctx, refresher.RefreshProfile, refresher.RefreshRepositories)
}

func (s *PortfolioService) load(
	ctx context.Context,
	loadProfile func(ctx context.Context, username string) (*models.Profile, error),
	loadRepositories func(ctx context.Context, username string, perPage int) ([]models.Repository, error),
) *Snapshot {
	snapshot := &Snapshot{Username: s.cfg.Username}

	var g errgroup.Group
	g.Go(func() error {
		profile, err := loadProfile(ctx, s.cfg.Username)
		if err != nil {
			logger.WithError(err).WithField("username", s.cfg.Username).Warn("failed to load profile")
			snapshot.ProfileErr = err
			return nil
		}
		snapshot.Profile = profile
		return nil
	})
	g.Go(func() error {
		repos, err := loadRepositories(ctx, s.cfg.Username, s.cfg.PerPage)
		if err != nil {
			logger.WithError(err).WithField("username", s.cfg.Username).Error("failed to load repositories")
			snapshot.RepositoriesErr = err
			return nil
		}
		snapshot.Repositories = repos
		snapshot.Languages = LanguageOptions(repos)
		return nil
	})
	_ = g.Wait()

	return snapshot
}

// Paint writes the snapshot onto targets. The hero keeps whatever it showed
// before when the profile failed; a repository failure shows the error card.
func (s *PortfolioService) Paint(snapshot *Snapshot, state models.FilterState, t render.Targets, year int) {
	render.PaintChrome(t, snapshot.Username, year)

	if snapshot.Profile != nil {
		render.PaintProfile(t, snapshot.Username, snapshot.Profile)
	}

	if snapshot.RepositoriesErr != nil {
		render.PaintProjectsFailed(t)
		return
	}
	render.PaintProjects(t, snapshot.Languages, state, snapshot.Cards(state))
}
