package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/math-blaster/internal/game"
)

const maxToasts = 3

type toast struct {
	notice  game.Notice
	expires time.Time
}

// Toasts is a game.Notifier that keeps recent notices on screen for their
// duration. The newest notices are kept when more than maxToasts arrive.
type Toasts struct {
	mu    sync.Mutex
	items []toast
	now   func() time.Time
}

// NewToasts creates an empty toast stack.
func NewToasts() *Toasts {
	return &Toasts{now: time.Now}
}

// Notify implements game.Notifier.
func (t *Toasts) Notify(n game.Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, toast{notice: n, expires: t.now().Add(n.Duration)})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
}

// Active drops expired toasts and returns the rest, oldest first.
func (t *Toasts) Active() []game.Notice {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	kept := t.items[:0]
	for _, it := range t.items {
		if now.Before(it.expires) {
			kept = append(kept, it)
		}
	}
	t.items = kept

	out := make([]game.Notice, len(kept))
	for i, it := range kept {
		out[i] = it.notice
	}
	return out
}

// Len returns the number of toasts, expired or not.
func (t *Toasts) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}
