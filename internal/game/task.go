package game

// Token identifies one run of a Task. Timers carry the token they were
// scheduled with; once the task stops or restarts the token is dead and the
// timer's tick is dropped.
type Token uint64

// Task is the handle for a periodic job (the simulation loop or the problem
// scheduler). It owns no timer itself: drivers schedule ticks and ask Live
// before running one. Task is not safe for concurrent use; Session guards it.
type Task struct {
	epoch   Token
	running bool
}

// Start begins a run and returns its token.
// If the task is already running it is a no-op returning the current token
// and false.
func (t *Task) Start() (Token, bool) {
	if t.running {
		return t.epoch, false
	}
	t.epoch++
	t.running = true
	return t.epoch, true
}

// Restart cancels any current run before starting a fresh one, so ticks of
// the previous run can never fire again.
func (t *Task) Restart() Token {
	t.Stop()
	tok, _ := t.Start()
	return tok
}

// Stop ends the current run. Stopping a stopped task does nothing and
// returns false.
func (t *Task) Stop() bool {
	if !t.running {
		return false
	}
	t.running = false
	t.epoch++
	return true
}

// Running reports whether a run is active.
func (t *Task) Running() bool {
	return t.running
}

// Live reports whether tok belongs to the active run.
func (t *Task) Live(tok Token) bool {
	return t.running && tok == t.epoch
}
