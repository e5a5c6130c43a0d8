package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteTerminal prints the document for a terminal: hero lines, a
// navigation bar and the project cards as a table.
func WriteTerminal(w io.Writer, doc *Document) error {
	page := doc.Snapshot()

	var nav []string
	for _, section := range NavSections {
		if section == page.ActiveNav {
			nav = append(nav, "["+strings.ToUpper(section)+"]")
		} else {
			nav = append(nav, section)
		}
	}
	fmt.Fprintln(w, strings.Join(nav, "  "))
	fmt.Fprintln(w, page.HeroTitle)
	fmt.Fprintln(w, page.HeroSubtitle)
	if len(page.HeroMeta) > 0 {
		fmt.Fprintln(w, strings.Join(page.HeroMeta, " • "))
	}
	for _, link := range page.HeroLinks {
		fmt.Fprintf(w, "%s: %s\n", link.Label, link.Href)
	}

	filter := fmt.Sprintf("search=%q language=%q sort=%s", page.Filter.Query, page.Filter.Language, page.Filter.Sort)
	fmt.Fprintln(w, filter)

	if err := WriteCardTable(w, page.Cards); err != nil {
		return err
	}

	if page.ContactEmail != "" {
		fmt.Fprintf(w, "Contact: %s [%s]\n", page.ContactEmail, page.CopyLabel)
	}
	_, err := fmt.Fprintf(w, "© %d · %s\n", page.Year, page.GitHubLink)
	return err
}

// WriteCardTable prints cards as a table. A placeholder card prints as its message.
func WriteCardTable(w io.Writer, cards []Card) error {
	if len(cards) == 1 && cards[0].Placeholder {
		_, err := fmt.Fprintln(w, cards[0].Message)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Description", "Language", "Stars", "Forks", "Updated", "Badges", "Links"})
	table.SetAutoWrapText(false)
	for _, card := range cards {
		var badges []string
		if card.Fork {
			badges = append(badges, "fork")
		}
		if card.Archived {
			badges = append(badges, "archived")
		}
		links := card.RepoURL
		if card.LiveURL != "" {
			links += " | live: " + card.LiveURL
		}
		table.Append([]string{
			card.Name,
			card.Description,
			card.Language,
			strconv.Itoa(card.Stars),
			strconv.Itoa(card.Forks),
			card.Updated,
			strings.Join(badges, ","),
			links,
		})
	}
	table.Render()
	return nil
}
