package clipboard

import (
	"sync"
	"time"
)

const (
	CopiedLabel     = "Copied!"
	CopyFailedLabel = "Copy failed"

	// FeedbackDuration is how long the result label stays before reverting.
	FeedbackDuration = 1500 * time.Millisecond
)

// Button copies a fixed text and reports the result through its label.
type Button struct {
	copier    *Copier
	text      string
	idleLabel string
	setLabel  func(label string)
	revert    time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewButton creates a button that copies text. setLabel receives every
// label change, including the revert to idleLabel.
func NewButton(copier *Copier, text, idleLabel string, setLabel func(string)) *Button {
	return &Button{
		copier:    copier,
		text:      text,
		idleLabel: idleLabel,
		setLabel:  setLabel,
		revert:    FeedbackDuration,
	}
}

// Click copies the text, shows the outcome and schedules the revert.
// A second click before the revert restarts the countdown.
func (b *Button) Click() error {
	err := b.copier.Copy(b.text)
	label := CopiedLabel
	if err != nil {
		label = CopyFailedLabel
	}
	b.setLabel(label)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.revert, func() {
		b.setLabel(b.idleLabel)
	})
	return err
}

// Close cancels a pending revert.
func (b *Button) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
