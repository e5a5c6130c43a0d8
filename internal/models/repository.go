package models

import (
	"strings"
	"time"
)

// Repository is one public GitHub repository as shown on the portfolio.
type Repository struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	StarCount   int       `json:"stargazers_count"`
	ForkCount   int       `json:"forks_count"`
	PushedAt    time.Time `json:"pushed_at"`
	HomepageURL string    `json:"homepage,omitempty"`
	HTMLURL     string    `json:"html_url"`
	IsFork      bool      `json:"fork"`
	IsArchived  bool      `json:"archived"`
}

// LiveURL returns the homepage when it is set to something other than whitespace.
func (r Repository) LiveURL() (string, bool) {
	homepage := strings.TrimSpace(r.HomepageURL)
	return homepage, homepage != ""
}
