package render

import (
	"html/template"
	"io"
	"strings"
)

const cardsTemplate = `{{define "cards"}}{{range .}}{{if .Placeholder}}<div class="card card--placeholder">{{.Message}}</div>
{{else}}<div class="card">
  <h3>{{.Name}}</h3>
  <p>{{.Description}}</p>
  <div class="meta">
    {{if .Language}}<span class="lang">🔤 {{.Language}}</span>{{end}}
    <span>⭐ {{.Stars}}</span>
    <span>🍴 {{.Forks}}</span>
    {{if .Fork}}<span class="badge badge--fork">Fork</span>{{end}}
    {{if .Archived}}<span class="badge badge--archived">Archived</span>{{end}}
    <span>🕒 Updated {{.Updated}}</span>
  </div>
  <div class="links">
    <a href="{{.RepoURL}}" target="_blank" rel="noopener">Repository</a>
    {{if .LiveURL}}<a class="primary" href="{{.LiveURL}}" target="_blank" rel="noopener">Live</a>{{end}}
  </div>
</div>
{{end}}{{end}}{{end}}`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.HeroTitle}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <nav class="nav">
    {{range .Nav}}<a href="#{{.Section}}" class="nav-link{{if .Active}} active{{end}}">{{.Label}}</a>
    {{end}}
  </nav>

  <section id="about" class="hero">
    <img id="profile-img" src="{{.ProfileImage}}" alt="Profile picture">
    <h1 id="hero-title">{{.HeroTitle}}</h1>
    <p id="hero-subtitle">{{.HeroSubtitle}}</p>
    <p id="hero-meta">{{join .HeroMeta " • "}}</p>
    <div id="hero-links">{{range .HeroLinks}}<a href="{{.Href}}" target="_blank" rel="noopener">{{.Label}}</a>{{end}}</div>
  </section>

  <section id="projects">
    <h2>Projects</h2>
    <form class="controls" method="get" action="/#projects">
      <input id="search" type="search" name="q" value="{{.Filter.Query}}" placeholder="Search projects…">
      <select id="language-filter" name="language">
        {{range .LanguageOptions}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
      <select id="sort" name="sort">
        {{range .SortOptions}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
      <button type="submit">Apply</button>
    </form>
    <div id="project-cards" class="cards">
{{template "cards" .Cards}}    </div>
  </section>

  <section id="contact">
    <h2>Contact</h2>
    {{if .ContactEmail}}<a id="contact-email" href="mailto:{{.ContactEmail}}">{{.ContactEmail}}</a>
    <button id="copy-email" type="button" data-copy="{{.ContactEmail}}">{{.CopyLabel}}</button>{{else}}<a id="contact-email" href="#">Email not public</a>{{end}}
  </section>

  <footer>
    <p>© <span id="year">{{.Year}}</span> · <a id="github-link" href="{{.GitHubLink}}" target="_blank" rel="noopener">GitHub</a></p>
  </footer>
  <script src="/static/copy.js" defer></script>
</body>
</html>
`

var templates = template.Must(
	template.Must(template.New("page").Funcs(template.FuncMap{"join": strings.Join}).Parse(pageTemplate)).
		Parse(cardsTemplate),
)

type navItem struct {
	Section string
	Label   string
	Active  bool
}

type pageData struct {
	Page
	Nav []navItem
}

// WritePage renders the whole document as an HTML page.
func WritePage(w io.Writer, doc *Document) error {
	page := doc.Snapshot()
	data := pageData{Page: page}
	for _, section := range NavSections {
		data.Nav = append(data.Nav, navItem{
			Section: section,
			Label:   strings.ToUpper(section[:1]) + section[1:],
			Active:  section == page.ActiveNav,
		})
	}
	return templates.ExecuteTemplate(w, "page", data)
}

// WriteCards renders only the project card container contents.
func WriteCards(w io.Writer, cards []Card) error {
	return templates.ExecuteTemplate(w, "cards", cards)
}
