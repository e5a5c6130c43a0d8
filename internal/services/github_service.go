package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/alimgiray/gfolio/internal/cache"
	apperrors "github.com/alimgiray/gfolio/internal/errors"
	"github.com/alimgiray/gfolio/internal/models"
)

const (
	profileResource = "profile"
	reposResource   = "repos"

	maxPerPage = 100

	maxErrorBody = 512
)

// Loader is the read side the portfolio needs from GitHub.
type Loader interface {
	LoadProfile(ctx context.Context, username string) (*models.Profile, error)
	LoadRepositories(ctx context.Context, username string, perPage int) ([]models.Repository, error)
}

// Refresher is implemented by loaders that can bypass their cache read.
// A refresh still stores what it fetched.
type Refresher interface {
	RefreshProfile(ctx context.Context, username string) (*models.Profile, error)
	RefreshRepositories(ctx context.Context, username string, perPage int) ([]models.Repository, error)
}

// LoaderOptions decides which repositories make it past the loader.
type LoaderOptions struct {
	IncludeForks    bool
	IncludeArchived bool
}

type GitHubService struct {
	client  *github.Client
	cache   cache.Cache
	options LoaderOptions
}

// NewGitHubClient creates a GitHub client. The token is optional; baseURL
// overrides the public API root when non-empty.
func NewGitHubClient(token, baseURL string) (*github.Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}
	return client, nil
}

func NewGitHubService(client *github.Client, c cache.Cache, options LoaderOptions) *GitHubService {
	return &GitHubService{
		client:  client,
		cache:   c,
		options: options,
	}
}

// LoadProfile returns the user's profile, from cache when fresh.
func (s *GitHubService) LoadProfile(ctx context.Context, username string) (*models.Profile, error) {
	return s.loadProfile(ctx, username, true)
}

// RefreshProfile fetches the profile even when the cached one is fresh and
// stores the result.
func (s *GitHubService) RefreshProfile(ctx context.Context, username string) (*models.Profile, error) {
	return s.loadProfile(ctx, username, false)
}

func (s *GitHubService) loadProfile(ctx context.Context, username string, useCache bool) (*models.Profile, error) {
	key := cache.Key(profileResource, username)

	var profile models.Profile
	if useCache && s.cache.Get(key, &profile) {
		return &profile, nil
	}

	user, _, err := s.client.Users.Get(ctx, username)
	if err != nil {
		return nil, translateGitHubError(err)
	}

	profile = profileFromAPI(user)
	s.cache.Set(key, profile)
	return &profile, nil
}

// LoadRepositories returns up to perPage repositories, most recently
// updated first, with forks and archived repositories removed unless the
// options include them. The cache holds the list before that filter.
func (s *GitHubService) LoadRepositories(ctx context.Context, username string, perPage int) ([]models.Repository, error) {
	return s.loadRepositories(ctx, username, perPage, true)
}

// RefreshRepositories is LoadRepositories without the cache read.
func (s *GitHubService) RefreshRepositories(ctx context.Context, username string, perPage int) ([]models.Repository, error) {
	return s.loadRepositories(ctx, username, perPage, false)
}

func (s *GitHubService) loadRepositories(ctx context.Context, username string, perPage int, useCache bool) ([]models.Repository, error) {
	if perPage <= 0 || perPage > maxPerPage {
		perPage = maxPerPage
	}
	key := cache.Key(reposResource, username)

	var repos []models.Repository
	if !useCache || !s.cache.Get(key, &repos) {
		opts := &github.RepositoryListOptions{
			Sort:        "updated",
			ListOptions: github.ListOptions{PerPage: perPage},
		}
		apiRepos, _, err := s.client.Repositories.List(ctx, username, opts)
		if err != nil {
			return nil, translateGitHubError(err)
		}

		repos = make([]models.Repository, 0, len(apiRepos))
		for _, repo := range apiRepos {
			repos = append(repos, repositoryFromAPI(repo))
		}
		s.cache.Set(key, repos)
	}

	return IncludeRepositories(repos, s.options.IncludeForks, s.options.IncludeArchived), nil
}

func profileFromAPI(user *github.User) models.Profile {
	return models.Profile{
		Login:           user.GetLogin(),
		Name:            user.GetName(),
		Bio:             user.GetBio(),
		AvatarURL:       user.GetAvatarURL(),
		Location:        user.GetLocation(),
		PublicRepos:     user.PublicRepos,
		Blog:            user.GetBlog(),
		TwitterUsername: user.GetTwitterUsername(),
		Email:           user.GetEmail(),
	}
}

func repositoryFromAPI(repo *github.Repository) models.Repository {
	return models.Repository{
		Name:        repo.GetName(),
		Description: repo.GetDescription(),
		Language:    repo.GetLanguage(),
		StarCount:   repo.GetStargazersCount(),
		ForkCount:   repo.GetForksCount(),
		PushedAt:    repo.GetPushedAt().Time,
		HomepageURL: repo.GetHomepage(),
		HTMLURL:     repo.GetHTMLURL(),
		IsFork:      repo.GetFork(),
		IsArchived:  repo.GetArchived(),
	}
}

// translateGitHubError maps go-github errors onto AppErrors carrying the
// status code, request URL and response message.
func translateGitHubError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		status, u := responseMeta(rateErr.Response)
		return apperrors.NewRateLimitedError(status, u, rateErr.Message)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		status, u := responseMeta(abuseErr.Response)
		return apperrors.NewRateLimitedError(status, u, abuseErr.Message)
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		status, u := responseMeta(respErr.Response)
		message := respErr.Message
		if message == "" {
			message = responseText(respErr.Response)
		}
		return apperrors.NewUpstreamError(status, u, message)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return apperrors.NewDecodeError("GitHub API", err)
	}

	return fmt.Errorf("GitHub request failed: %w", err)
}

// responseText is the body of a non-JSON error response, or the status
// text when the body is empty. go-github leaves the body readable.
func responseText(resp *http.Response) string {
	if resp.Body != nil {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err == nil {
			if text := strings.TrimSpace(string(body)); text != "" {
				return text
			}
		}
	}
	return http.StatusText(resp.StatusCode)
}

func responseMeta(resp *http.Response) (int, string) {
	if resp == nil {
		return 0, ""
	}
	u := ""
	if resp.Request != nil && resp.Request.URL != nil {
		u = resp.Request.URL.String()
	}
	return resp.StatusCode, u
}
