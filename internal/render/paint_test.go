package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alimgiray/gfolio/internal/models"
)

func TestPaintProfileLoginOnly(t *testing.T) {
	doc := NewDocument()
	before := doc.Snapshot()

	PaintProfile(doc, "u1", &models.Profile{Login: "u1"})
	page := doc.Snapshot()

	assert.Equal(t, "Hello, I’m u1 👋", page.HeroTitle)
	assert.Equal(t, models.DefaultTagline, page.HeroSubtitle)
	assert.Empty(t, page.HeroMeta)
	assert.Equal(t, []models.Link{{Href: "https://github.com/u1", Label: "GitHub"}}, page.HeroLinks)
	assert.Empty(t, page.ContactEmail)
	assert.Equal(t, before.ProfileImage, page.ProfileImage, "no avatar keeps the placeholder image")
}

func TestPaintProfileFull(t *testing.T) {
	repos := 0
	doc := NewDocument()

	PaintProfile(doc, "u1", &models.Profile{
		Login:           "u1",
		Name:            "Uma",
		Bio:             "Gopher",
		AvatarURL:       "https://avatars.example/u1",
		Location:        "Lisbon",
		PublicRepos:     &repos,
		Blog:            "uma.dev",
		TwitterUsername: "uma",
		Email:           "uma@example.com",
	})
	page := doc.Snapshot()

	assert.Equal(t, "Hello, I’m Uma 👋", page.HeroTitle)
	assert.Equal(t, "Gopher", page.HeroSubtitle)
	assert.Equal(t, "https://avatars.example/u1", page.ProfileImage)
	assert.Equal(t, []string{"📍 Lisbon", "📁 0 repos"}, page.HeroMeta)
	assert.Equal(t, []models.Link{
		{Href: "https://github.com/u1", Label: "GitHub"},
		{Href: "https://uma.dev", Label: "Website"},
		{Href: "https://twitter.com/uma", Label: "Twitter"},
	}, page.HeroLinks)
	assert.Equal(t, "uma@example.com", page.ContactEmail)
}

func TestPaintProjects(t *testing.T) {
	doc := NewDocument()
	state := models.FilterState{Query: "cli", Language: "Go", Sort: models.SortByName}

	PaintProjects(doc, []string{"Go", "Python"}, state, BuildCards(nil))
	page := doc.Snapshot()

	assert.Equal(t, state, page.Filter)
	assert.Len(t, page.LanguageOptions, 3)
	assert.True(t, page.LanguageOptions[1].Selected)
	assert.Equal(t, NoMatchesMessage, page.Cards[0].Message)

	PaintProjectsFailed(doc)
	assert.Equal(t, ErrorCards(), doc.Snapshot().Cards)
}

func TestPaintChrome(t *testing.T) {
	doc := NewDocument()
	PaintChrome(doc, "u1", 2026)

	page := doc.Snapshot()
	assert.Equal(t, 2026, page.Year)
	assert.Equal(t, "https://github.com/u1", page.GitHubLink)
}

func TestSnapshotIsACopy(t *testing.T) {
	doc := NewDocument()
	doc.SetHeroMeta([]string{"a"})

	page := doc.Snapshot()
	page.HeroMeta[0] = "mutated"

	assert.Equal(t, []string{"a"}, doc.Snapshot().HeroMeta)
}
