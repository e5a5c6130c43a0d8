package models

import "strings"

const (
	DefaultDisplayName = "Developer"
	DefaultTagline     = "Welcome to my portfolio website 🚀"
)

// Profile is a snapshot of a GitHub user resource. Everything except Login is optional.
type Profile struct {
	Login           string `json:"login"`
	Name            string `json:"name,omitempty"`
	Bio             string `json:"bio,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	Location        string `json:"location,omitempty"`
	PublicRepos     *int   `json:"public_repos,omitempty"`
	Blog            string `json:"blog,omitempty"`
	TwitterUsername string `json:"twitter_username,omitempty"`
	Email           string `json:"email,omitempty"`
}

// DisplayName falls back from the real name to the login to "Developer".
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Login != "" {
		return p.Login
	}
	return DefaultDisplayName
}

// Tagline returns the bio or the default tagline.
func (p *Profile) Tagline() string {
	if p.Bio != "" {
		return p.Bio
	}
	return DefaultTagline
}

// WebsiteURL returns the blog as an absolute URL, or "" when none is set.
func (p *Profile) WebsiteURL() string {
	if p.Blog == "" {
		return ""
	}
	if strings.HasPrefix(p.Blog, "http") {
		return p.Blog
	}
	return "https://" + p.Blog
}
