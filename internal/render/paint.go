package render

import (
	"fmt"

	"github.com/alimgiray/gfolio/internal/models"
)

// GitHubProfileURL is the public profile page of username.
func GitHubProfileURL(username string) string {
	return "https://github.com/" + username
}

// PaintChrome sets the parts of the page that do not depend on any fetch.
func PaintChrome(t Targets, username string, year int) {
	t.SetYear(year)
	t.SetGitHubLink(GitHubProfileURL(username))
}

// PaintProfile fills the hero and contact sections. Optional fields that
// are absent produce no meta item and no link.
func PaintProfile(t Targets, username string, p *models.Profile) {
	if p.AvatarURL != "" {
		t.SetProfileImage(p.AvatarURL)
	}
	t.SetHeroTitle(fmt.Sprintf("Hello, I’m %s 👋", p.DisplayName()))
	t.SetHeroSubtitle(p.Tagline())

	var meta []string
	if p.Location != "" {
		meta = append(meta, "📍 "+p.Location)
	}
	if p.PublicRepos != nil {
		meta = append(meta, fmt.Sprintf("📁 %d repos", *p.PublicRepos))
	}
	t.SetHeroMeta(meta)

	links := []models.Link{{Href: GitHubProfileURL(username), Label: "GitHub"}}
	if website := p.WebsiteURL(); website != "" {
		links = append(links, models.Link{Href: website, Label: "Website"})
	}
	if p.TwitterUsername != "" {
		links = append(links, models.Link{Href: "https://twitter.com/" + p.TwitterUsername, Label: "Twitter"})
	}
	t.SetHeroLinks(links)

	if p.Email != "" {
		t.SetContactEmail(p.Email)
	}
}

// PaintProjects writes the language dropdown, control values and cards.
func PaintProjects(t Targets, languages []string, state models.FilterState, cards []Card) {
	t.SetLanguageOptions(LanguageOptionList(languages, state.Language))
	t.SetFilterState(state)
	t.SetProjectCards(cards)
}

// PaintProjectsFailed replaces the project list with the static failure card.
func PaintProjectsFailed(t Targets) {
	t.SetProjectCards(ErrorCards())
}
