package render

import (
	"time"

	"github.com/alimgiray/gfolio/internal/models"
)

const (
	NoMatchesMessage     = "No projects match your filters."
	LoadFailedMessage    = "Unable to load projects from GitHub. Please try again later."
	NoDescriptionMessage = "No description provided."
	AllLanguagesLabel    = "All languages"
)

// Card is the view model of one project card. Placeholder cards carry only
// a Message.
type Card struct {
	Placeholder bool
	Message     string

	Name        string
	Description string
	Language    string
	Stars       int
	Forks       int
	Fork        bool
	Archived    bool
	Updated     string
	RepoURL     string
	LiveURL     string
}

func placeholderCard(message string) Card {
	return Card{Placeholder: true, Message: message}
}

// BuildCards maps an already filtered and sorted list to cards, one per
// repository, or a single "no matches" placeholder when the list is empty.
func BuildCards(repos []models.Repository) []Card {
	if len(repos) == 0 {
		return []Card{placeholderCard(NoMatchesMessage)}
	}

	cards := make([]Card, 0, len(repos))
	for _, repo := range repos {
		description := repo.Description
		if description == "" {
			description = NoDescriptionMessage
		}
		live, _ := repo.LiveURL()

		cards = append(cards, Card{
			Name:        repo.Name,
			Description: description,
			Language:    repo.Language,
			Stars:       repo.StarCount,
			Forks:       repo.ForkCount,
			Fork:        repo.IsFork,
			Archived:    repo.IsArchived,
			Updated:     FormatDate(repo.PushedAt),
			RepoURL:     repo.HTMLURL,
			LiveURL:     live,
		})
	}
	return cards
}

// ErrorCards is what the project list shows when the repositories could not be loaded.
func ErrorCards() []Card {
	return []Card{placeholderCard(LoadFailedMessage)}
}

// FormatDate renders a timestamp as "Jan 2, 2006" in local time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006")
}

// LanguageOptionList prefixes the languages with an "All languages" option.
func LanguageOptionList(languages []string, selected string) []Option {
	options := make([]Option, 0, len(languages)+1)
	options = append(options, Option{Value: "", Label: AllLanguagesLabel, Selected: selected == ""})
	for _, lang := range languages {
		options = append(options, Option{Value: lang, Label: lang, Selected: lang == selected})
	}
	return options
}

// SortOptionList lists every sort key with the current one selected.
func SortOptionList(selected models.SortKey) []Option {
	options := make([]Option, 0, len(models.SortKeys))
	for _, key := range models.SortKeys {
		options = append(options, Option{Value: string(key), Label: key.Label(), Selected: key == selected})
	}
	return options
}
