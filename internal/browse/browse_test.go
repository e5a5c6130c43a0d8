package browse

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimgiray/gfolio/internal/clipboard"
	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/services"
	"github.com/alimgiray/gfolio/pkg/config"
)

type memoryClipboard struct {
	text string
}

func (m *memoryClipboard) WriteText(text string) error {
	m.text = text
	return nil
}

func testSnapshot(email string) *services.Snapshot {
	repos := []models.Repository{
		{Name: "gfolio", Description: "Portfolio renderer", Language: "Go", StarCount: 4,
			PushedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), HTMLURL: "https://github.com/u1/gfolio"},
		{Name: "alpha", Description: "cli helpers", Language: "Rust", StarCount: 9,
			PushedAt: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), HTMLURL: "https://github.com/u1/alpha"},
	}
	return &services.Snapshot{
		Username:     "u1",
		Profile:      &models.Profile{Login: "u1", Name: "Uma", Email: email},
		Repositories: repos,
		Languages:    services.LanguageOptions(repos),
	}
}

func run(t *testing.T, snapshot *services.Snapshot, input string, opts Options) string {
	t.Helper()
	portfolio := services.NewPortfolioService(nil, config.PortfolioConfig{Username: "u1"})
	opts.Year = 2024

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), portfolio, snapshot, strings.NewReader(input), &out, opts))
	return out.String()
}

func lastFrame(out string) string {
	return out[strings.LastIndex(out, "Hello, I’m"):]
}

func TestInitialFrame(t *testing.T) {
	out := run(t, testSnapshot(""), "", Options{})

	frame := lastFrame(out)
	assert.Contains(t, out, "[ABOUT]")
	assert.Contains(t, frame, "Hello, I’m Uma 👋")
	assert.Contains(t, frame, "gfolio")
	assert.Contains(t, frame, "alpha")
	assert.Contains(t, frame, "© 2024 · https://github.com/u1")
}

func TestQueryLine(t *testing.T) {
	out := run(t, testSnapshot(""), "cli\n", Options{})

	frame := lastFrame(out)
	assert.Contains(t, frame, `search="cli"`)
	assert.Contains(t, frame, "alpha")
	assert.NotContains(t, frame, "gfolio")
}

func TestQueryWithoutMatches(t *testing.T) {
	out := run(t, testSnapshot(""), "zz\n", Options{})

	assert.Contains(t, lastFrame(out), "No projects match your filters.")
}

func TestLanguageAndSortCommands(t *testing.T) {
	out := run(t, testSnapshot(""), ":lang Go\n:sort stargazers_count\n:quit\n", Options{})

	frame := lastFrame(out)
	assert.Contains(t, frame, `language="Go"`)
	assert.Contains(t, frame, "sort=stargazers_count")
	assert.Contains(t, frame, "gfolio")
	assert.NotContains(t, frame, "alpha")
}

func TestScrollHighlightsSection(t *testing.T) {
	out := run(t, testSnapshot(""), ":scroll 500\n:quit\n", Options{})

	assert.Contains(t, out, "[ABOUT]  projects  contact")
	assert.Contains(t, out, "about  [PROJECTS]  contact")
}

func TestCopyCommand(t *testing.T) {
	board := &memoryClipboard{}
	copier := clipboard.NewCopier(board, nil)

	out := run(t, testSnapshot("uma@example.com"), ":copy\n", Options{Copier: copier})

	assert.Equal(t, "uma@example.com", board.text)
	assert.Contains(t, lastFrame(out), "Contact: uma@example.com [Copied!]")
}

func TestCommandErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bad sort", input: ":sort size\n", expected: `unknown sort key "size"`},
		{name: "bad scroll", input: ":scroll down\n", expected: `invalid scroll offset "down"`},
		{name: "no email", input: ":copy\n", expected: "no public email to copy"},
		{name: "unknown", input: ":frobnicate\n", expected: `unknown command "frobnicate"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, testSnapshot(""), tc.input, Options{})
			assert.Contains(t, out, tc.expected)
		})
	}
}

func TestHelp(t *testing.T) {
	out := run(t, testSnapshot(""), ":help\n:quit\n", Options{})
	assert.Contains(t, out, ":scroll OFFSET")
}

func TestContextCancel(t *testing.T) {
	portfolio := services.NewPortfolioService(nil, config.PortfolioConfig{Username: "u1"})
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, portfolio, testSnapshot(""), reader, io.Discard, Options{Year: 2024})
	assert.ErrorIs(t, err, context.Canceled)
}
