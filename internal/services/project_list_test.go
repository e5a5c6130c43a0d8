package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alimgiray/gfolio/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func names(repos []models.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}

func sampleRepos() []models.Repository {
	return []models.Repository{
		{Name: "gfolio", Description: "Portfolio renderer", Language: "Go", StarCount: 10, PushedAt: day("2024-03-01")},
		{Name: "dotfiles", Description: "", Language: "", StarCount: 2, PushedAt: day("2022-06-01")},
		{Name: "pyscraper", Description: "Scrapes the web with Go-like speed", Language: "Python", StarCount: 10, PushedAt: day("2023-09-01")},
		{Name: "Zeta", Description: "CLI for zeta functions", Language: "Go", StarCount: 0, PushedAt: day("2024-01-10")},
		{Name: "alpha", Description: "cli helpers", Language: "Rust", StarCount: 5, PushedAt: day("2021-01-01")},
	}
}

func TestSortExampleFromTwoRepositories(t *testing.T) {
	repos := []models.Repository{
		{Name: "b", PushedAt: day("2023-01-01"), StarCount: 5},
		{Name: "a", PushedAt: day("2024-01-01"), StarCount: 1},
	}

	assert.Equal(t, []string{"a", "b"}, names(SortRepositories(repos, models.SortByName)))
	assert.Equal(t, []string{"a", "b"}, names(SortRepositories(repos, models.SortByRecency)))
	assert.Equal(t, []string{"b", "a"}, names(SortRepositories(repos, models.SortByPopularity)))
}

func TestSortUnknownKeyPassesThrough(t *testing.T) {
	repos := sampleRepos()
	assert.Equal(t, names(repos), names(SortRepositories(repos, models.SortKey("size"))))
}

func TestSortPopularityIsStable(t *testing.T) {
	sorted := SortRepositories(sampleRepos(), models.SortByPopularity)
	// gfolio and pyscraper tie at 10 stars and keep their input order
	assert.Equal(t, []string{"gfolio", "pyscraper", "alpha", "dotfiles", "Zeta"}, names(sorted))
}

func TestSortByNameIsCaseInsensitiveLocaleOrder(t *testing.T) {
	sorted := SortRepositories(sampleRepos(), models.SortByName)
	assert.Equal(t, []string{"alpha", "dotfiles", "gfolio", "pyscraper", "Zeta"}, names(sorted))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	repos := sampleRepos()
	before := names(repos)

	SortRepositories(repos, models.SortByName)
	ApplyFilter(repos, models.FilterState{Query: "g", Sort: models.SortByPopularity})

	assert.Equal(t, before, names(repos))
}

func TestFilterRepositories(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		language string
		expected []string
	}{
		{name: "no filters", expected: []string{"gfolio", "dotfiles", "pyscraper", "Zeta", "alpha"}},
		{name: "query matches name case-insensitively", query: "ZETA", expected: []string{"Zeta"}},
		{name: "query matches description", query: "cli", expected: []string{"Zeta", "alpha"}},
		{name: "language only", language: "Go", expected: []string{"gfolio", "Zeta"}},
		{name: "query and language", query: "port", language: "Go", expected: []string{"gfolio"}},
		{name: "no matches", query: "zz", expected: []string{}},
		{name: "language is exact", language: "go", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterRepositories(sampleRepos(), tc.query, tc.language)
			assert.Equal(t, tc.expected, names(got))
		})
	}
}

func TestFilterPredicatesCommute(t *testing.T) {
	repos := sampleRepos()
	for _, query := range []string{"", "go", "cli", "s"} {
		for _, lang := range []string{"", "Go", "Python", "Rust"} {
			queryFirst := FilterRepositories(FilterRepositories(repos, query, ""), "", lang)
			langFirst := FilterRepositories(FilterRepositories(repos, "", lang), query, "")
			both := FilterRepositories(repos, query, lang)

			assert.Equal(t, names(both), names(queryFirst), "query=%q lang=%q", query, lang)
			assert.Equal(t, names(both), names(langFirst), "query=%q lang=%q", query, lang)
		}
	}
}

func TestApplyFilterIsDeterministic(t *testing.T) {
	state := models.FilterState{Query: "o", Sort: models.SortByRecency}

	first := ApplyFilter(sampleRepos(), state)
	second := ApplyFilter(sampleRepos(), state)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"gfolio", "Zeta", "pyscraper", "dotfiles"}, names(first))
}

func TestIncludeRepositories(t *testing.T) {
	repos := []models.Repository{
		{Name: "own"},
		{Name: "forked", IsFork: true},
		{Name: "old", IsArchived: true},
		{Name: "old-fork", IsFork: true, IsArchived: true},
	}

	assert.Equal(t, []string{"own"}, names(IncludeRepositories(repos, false, false)))
	assert.Equal(t, []string{"own", "forked"}, names(IncludeRepositories(repos, true, false)))
	assert.Equal(t, []string{"own", "old"}, names(IncludeRepositories(repos, false, true)))
	assert.Equal(t, []string{"own", "forked", "old", "old-fork"}, names(IncludeRepositories(repos, true, true)))
}

func TestLanguageOptions(t *testing.T) {
	assert.Equal(t, []string{"Go", "Python", "Rust"}, LanguageOptions(sampleRepos()))
	assert.Empty(t, LanguageOptions(nil))
}
