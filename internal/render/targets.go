// Package render turns portfolio data into view models and paints them
// onto a set of render targets. The targets are the contract with the page
// markup; Document is the in-memory implementation the HTML and terminal
// writers read from.
package render

import "github.com/alimgiray/gfolio/internal/models"

// Element ids the page markup exposes. Each one is backed by a Targets setter.
const (
	IDYear           = "year"
	IDProfileImage   = "profile-img"
	IDHeroTitle      = "hero-title"
	IDHeroSubtitle   = "hero-subtitle"
	IDHeroMeta       = "hero-meta"
	IDHeroLinks      = "hero-links"
	IDProjectCards   = "project-cards"
	IDSearch         = "search"
	IDLanguageFilter = "language-filter"
	IDSort           = "sort"
	IDContactEmail   = "contact-email"
	IDGitHubLink     = "github-link"
	IDCopyButton     = "copy-email"
)

// Targets is the set of render-target handles painters write to.
type Targets interface {
	SetYear(year int)
	SetGitHubLink(href string)
	SetProfileImage(src string)
	SetHeroTitle(text string)
	SetHeroSubtitle(text string)
	SetHeroMeta(items []string)
	SetHeroLinks(links []models.Link)
	SetContactEmail(email string)
	SetLanguageOptions(options []Option)
	SetFilterState(state models.FilterState)
	SetProjectCards(cards []Card)
	SetActiveNav(section string)
	SetCopyLabel(label string)
}

// Option is one entry of a dropdown.
type Option struct {
	Value    string
	Label    string
	Selected bool
}
