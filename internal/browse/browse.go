// Package browse runs an interactive portfolio session over a line
// oriented terminal. Plain lines update the search box; lines starting
// with ':' are commands.
package browse

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alimgiray/gfolio/internal/clipboard"
	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/nav"
	"github.com/alimgiray/gfolio/internal/render"
	"github.com/alimgiray/gfolio/internal/services"
)

const (
	defaultViewport = 1000
	heroHeight      = 600
	contactHeight   = 400
	controlsHeight  = 200
	cardHeight      = 150
)

const helpText = `type to search, or:
  :lang [LANGUAGE]  filter by language (empty for all)
  :sort KEY         pushed_at | stargazers_count | name
  :scroll OFFSET    scroll the page to OFFSET
  :copy             copy the contact email
  :help             show this help
  :quit             leave`

type Options struct {
	Year     int
	Copier   *clipboard.Copier
	Viewport float64
}

// notifyingDocument flags every paint so the loop knows to redraw.
type notifyingDocument struct {
	*render.Document
	dirty chan struct{}
}

func (d *notifyingDocument) touch() {
	select {
	case d.dirty <- struct{}{}:
	default:
	}
}

// drain reports whether anything was painted since the last call.
func (d *notifyingDocument) drain() bool {
	select {
	case <-d.dirty:
		return true
	default:
		return false
	}
}

func (d *notifyingDocument) SetProjectCards(cards []render.Card) {
	d.Document.SetProjectCards(cards)
	d.touch()
}

func (d *notifyingDocument) SetActiveNav(section string) {
	d.Document.SetActiveNav(section)
	d.touch()
}

func (d *notifyingDocument) SetCopyLabel(label string) {
	d.Document.SetCopyLabel(label)
	d.touch()
}

// Run paints snapshot, then reads commands from in until EOF, ":quit" or
// ctx is done, redrawing the page on out after every change.
func Run(ctx context.Context, portfolio *services.PortfolioService, snapshot *services.Snapshot, in io.Reader, out io.Writer, opts Options) error {
	if opts.Viewport <= 0 {
		opts.Viewport = defaultViewport
	}

	doc := &notifyingDocument{Document: render.NewDocument(), dirty: make(chan struct{}, 1)}
	portfolio.Paint(snapshot, models.DefaultFilterState(), doc, opts.Year)

	session := services.NewSession(snapshot, doc)
	defer session.Close()

	projectsHeight := float64(controlsHeight + cardHeight*len(snapshot.Repositories))
	highlighter := nav.NewHighlighter(
		nav.Stack(render.NavSections, []float64{heroHeight, projectsHeight, contactHeight}),
		nav.DefaultBand,
		doc.SetActiveNav,
	)
	highlighter.Observe(0, opts.Viewport)

	var button *clipboard.Button
	if snapshot.Profile != nil && snapshot.Profile.Email != "" && opts.Copier != nil {
		button = clipboard.NewButton(opts.Copier, snapshot.Profile.Email, render.DefaultCopyLabel, doc.SetCopyLabel)
		defer button.Close()
	}

	doc.drain()
	if err := render.WriteTerminal(out, doc.Document); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-doc.dirty:
			if err := render.WriteTerminal(out, doc.Document); err != nil {
				return err
			}
		case line, ok := <-lines:
			if !ok {
				session.Flush()
				return render.WriteTerminal(out, doc.Document)
			}
			quit, err := handle(line, session, highlighter, button, opts.Viewport, out)
			if quit {
				return nil
			}
			if err != nil {
				fmt.Fprintln(out, err)
			}
			if doc.drain() {
				if err := render.WriteTerminal(out, doc.Document); err != nil {
					return err
				}
			}
		}
	}
}

func handle(line string, session *services.Session, highlighter *nav.Highlighter, button *clipboard.Button, viewport float64, out io.Writer) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		session.SetQuery(line)
		return false, nil
	}

	command, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "quit", "q":
		return true, nil
	case "help":
		fmt.Fprintln(out, helpText)
	case "lang":
		session.SetLanguage(arg)
	case "sort":
		key, ok := models.ParseSortKey(arg)
		if !ok {
			return false, fmt.Errorf("unknown sort key %q", arg)
		}
		session.SetSort(key)
	case "scroll":
		offset, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return false, fmt.Errorf("invalid scroll offset %q", arg)
		}
		highlighter.Observe(offset, viewport)
	case "copy":
		if button == nil {
			return false, fmt.Errorf("no public email to copy")
		}
		if err := button.Click(); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unknown command %q, try :help", command)
	}
	return false, nil
}

func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimRight(scanner.Text(), "\r"):
			case <-done:
				return
			}
		}
	}()
	return lines
}
