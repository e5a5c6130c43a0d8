package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/alimgiray/gfolio/internal/models"
)

// IncludeRepositories drops forks and archived repositories unless asked to keep them.
func IncludeRepositories(repos []models.Repository, includeForks, includeArchived bool) []models.Repository {
	included := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.IsFork && !includeForks {
			continue
		}
		if repo.IsArchived && !includeArchived {
			continue
		}
		included = append(included, repo)
	}
	return included
}

// MatchesQuery reports whether the lowercased query is a substring of the
// repository name or description. An empty query matches everything.
func MatchesQuery(repo models.Repository, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(repo.Name), q) ||
		strings.Contains(strings.ToLower(repo.Description), q)
}

// MatchesLanguage reports whether the repository is written in lang. An
// empty lang matches everything.
func MatchesLanguage(repo models.Repository, lang string) bool {
	return lang == "" || repo.Language == lang
}

// FilterRepositories keeps repositories matching both the query and the language.
func FilterRepositories(repos []models.Repository, query, lang string) []models.Repository {
	filtered := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if MatchesQuery(repo, query) && MatchesLanguage(repo, lang) {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// SortRepositories returns a sorted copy. Unknown keys leave the order unchanged.
func SortRepositories(repos []models.Repository, key models.SortKey) []models.Repository {
	sorted := append([]models.Repository(nil), repos...)

	switch key {
	case models.SortByRecency:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PushedAt.After(sorted[j].PushedAt)
		})
	case models.SortByPopularity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StarCount > sorted[j].StarCount
		})
	case models.SortByName:
		// collators keep internal buffers, so one per sort
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}

	return sorted
}

// ApplyFilter is the whole display pipeline: filter, then sort. raw is not modified.
func ApplyFilter(raw []models.Repository, state models.FilterState) []models.Repository {
	return SortRepositories(FilterRepositories(raw, state.Query, state.Language), state.Sort)
}

// LanguageOptions returns the distinct non-empty languages, alphabetically.
func LanguageOptions(repos []models.Repository) []string {
	seen := make(map[string]bool)
	var langs []string
	for _, repo := range repos {
		if repo.Language == "" || seen[repo.Language] {
			continue
		}
		seen[repo.Language] = true
		langs = append(langs, repo.Language)
	}

	c := collate.New(language.Und)
	c.SortStrings(langs)
	return langs
}
