// Package nav tracks which page section sits in the viewport's
// highlight band and marks its navigation link active.
package nav

import "sync"

// Section is a page section laid out at Top with the given Height, in the
// same units as the scroll offset.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// Band is the part of the viewport that counts as "reading", as fractions
// of the viewport height measured from the top.
type Band struct {
	Top    float64
	Bottom float64
}

// DefaultBand is a thin strip 40%-45% down the viewport.
var DefaultBand = Band{Top: 0.40, Bottom: 0.45}

// Highlighter remembers the active section and reports changes.
type Highlighter struct {
	sections []Section
	band     Band
	onChange func(id string)

	mu     sync.Mutex
	active string
}

// NewHighlighter creates a highlighter over sections in page order.
// onChange may be nil.
func NewHighlighter(sections []Section, band Band, onChange func(id string)) *Highlighter {
	return &Highlighter{
		sections: append([]Section(nil), sections...),
		band:     band,
		onChange: onChange,
	}
}

// Observe recomputes the active section for the viewport scrolled to
// scrollTop. The first section intersecting the band wins; when none
// does, the previous active section stays.
func (h *Highlighter) Observe(scrollTop, viewportHeight float64) string {
	bandTop := scrollTop + h.band.Top*viewportHeight
	bandBottom := scrollTop + h.band.Bottom*viewportHeight

	h.mu.Lock()
	next := h.active
	for _, section := range h.sections {
		if section.Top < bandBottom && section.Top+section.Height > bandTop {
			next = section.ID
			break
		}
	}
	changed := next != h.active
	h.active = next
	h.mu.Unlock()

	if changed && h.onChange != nil {
		h.onChange(next)
	}
	return next
}

// Active returns the current active section id, "" before any section entered the band.
func (h *Highlighter) Active() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// Stack lays sections out one after another from offset zero.
func Stack(ids []string, heights []float64) []Section {
	sections := make([]Section, 0, len(ids))
	top := 0.0
	for i, id := range ids {
		sections = append(sections, Section{ID: id, Top: top, Height: heights[i]})
		top += heights[i]
	}
	return sections
}
