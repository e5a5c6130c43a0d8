package render

import (
	"sync"

	"github.com/alimgiray/gfolio/internal/models"
)

// Navigation sections in page order.
const (
	SectionAbout    = "about"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

var NavSections = []string{SectionAbout, SectionProjects, SectionContact}

const (
	placeholderTitle  = "Hello, I’m a developer 👋"
	placeholderAvatar = "https://avatars.githubusercontent.com/u/0?v=4"
	loadingMessage    = "Loading projects…"
	DefaultCopyLabel  = "Copy email"
)

// Page is a plain copy of everything painted so far.
type Page struct {
	Year            int
	GitHubLink      string
	ProfileImage    string
	HeroTitle       string
	HeroSubtitle    string
	HeroMeta        []string
	HeroLinks       []models.Link
	ContactEmail    string
	LanguageOptions []Option
	SortOptions     []Option
	Filter          models.FilterState
	Cards           []Card
	ActiveNav       string
	CopyLabel       string
}

// Document holds the current state of every render target. It is safe for
// concurrent use; debounced renders paint from timer goroutines.
type Document struct {
	mu   sync.RWMutex
	page Page
}

// NewDocument returns a document in the page's default placeholder state.
func NewDocument() *Document {
	state := models.DefaultFilterState()
	return &Document{
		page: Page{
			ProfileImage:    placeholderAvatar,
			HeroTitle:       placeholderTitle,
			HeroSubtitle:    models.DefaultTagline,
			LanguageOptions: LanguageOptionList(nil, ""),
			SortOptions:     SortOptionList(state.Sort),
			Filter:          state,
			Cards:           []Card{placeholderCard(loadingMessage)},
			ActiveNav:       SectionAbout,
			CopyLabel:       DefaultCopyLabel,
		},
	}
}

// Snapshot returns a copy of the page safe to read without locking.
func (d *Document) Snapshot() Page {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p := d.page
	p.HeroMeta = append([]string(nil), d.page.HeroMeta...)
	p.HeroLinks = append([]models.Link(nil), d.page.HeroLinks...)
	p.LanguageOptions = append([]Option(nil), d.page.LanguageOptions...)
	p.SortOptions = append([]Option(nil), d.page.SortOptions...)
	p.Cards = append([]Card(nil), d.page.Cards...)
	return p
}

func (d *Document) update(fn func(p *Page)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.page)
}

func (d *Document) SetYear(year int)          { d.update(func(p *Page) { p.Year = year }) }
func (d *Document) SetGitHubLink(href string) { d.update(func(p *Page) { p.GitHubLink = href }) }
func (d *Document) SetProfileImage(src string) {
	d.update(func(p *Page) { p.ProfileImage = src })
}
func (d *Document) SetHeroTitle(text string)    { d.update(func(p *Page) { p.HeroTitle = text }) }
func (d *Document) SetHeroSubtitle(text string) { d.update(func(p *Page) { p.HeroSubtitle = text }) }
func (d *Document) SetHeroMeta(items []string) {
	d.update(func(p *Page) { p.HeroMeta = append([]string(nil), items...) })
}
func (d *Document) SetHeroLinks(links []models.Link) {
	d.update(func(p *Page) { p.HeroLinks = append([]models.Link(nil), links...) })
}
func (d *Document) SetContactEmail(email string) { d.update(func(p *Page) { p.ContactEmail = email }) }
func (d *Document) SetLanguageOptions(options []Option) {
	d.update(func(p *Page) { p.LanguageOptions = append([]Option(nil), options...) })
}

// SetFilterState records the control values and re-marks the selected options.
func (d *Document) SetFilterState(state models.FilterState) {
	d.update(func(p *Page) {
		p.Filter = state
		p.SortOptions = SortOptionList(state.Sort)
		for i := range p.LanguageOptions {
			p.LanguageOptions[i].Selected = p.LanguageOptions[i].Value == state.Language
		}
	})
}

func (d *Document) SetProjectCards(cards []Card) {
	d.update(func(p *Page) { p.Cards = append([]Card(nil), cards...) })
}
func (d *Document) SetActiveNav(section string) { d.update(func(p *Page) { p.ActiveNav = section }) }
func (d *Document) SetCopyLabel(label string)   { d.update(func(p *Page) { p.CopyLabel = label }) }
