package models

// Link is an anchor with its visible label.
type Link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}
