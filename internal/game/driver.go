package game

import (
	"context"
	"sync"
	"time"
)

// Driver runs a Session without a UI: one goroutine per task, each paced by a
// time.Ticker. The session mutex serializes the two against each other and
// against concurrent Submit calls.
type Driver struct {
	session *Session
	frame   time.Duration
}

// NewDriver creates a driver ticking the simulation tickRate times per second.
func NewDriver(s *Session, tickRate int) *Driver {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Driver{
		session: s,
		frame:   time.Second / time.Duration(tickRate),
	}
}

// Run starts a game and blocks until it leaves the playing state or ctx is
// done. The session is closed on every return path. It returns the start
// error, ctx.Err() when cancelled, or nil when the game ended by itself.
func (d *Driver) Run(ctx context.Context) error {
	h, err := d.session.Start()
	if err != nil {
		return err
	}
	defer d.session.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer cancel()
		every(runCtx, d.frame, func() bool { return d.session.Tick(h.Loop) })
	}()
	go func() {
		defer wg.Done()
		defer cancel()
		every(runCtx, d.session.Gameplay().SpawnInterval(), func() bool { return d.session.Spawn(h.Spawn) })
	}()
	wg.Wait()

	return ctx.Err()
}

// every calls fn once per period until fn returns false or ctx is done.
func every(ctx context.Context, period time.Duration, fn func() bool) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !fn() {
				return
			}
		}
	}
}
