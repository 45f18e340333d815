package game

import "testing"

func TestTaskStartIsNoopWhileRunning(t *testing.T) {
	var task Task

	tok, started := task.Start()
	if !started || !task.Running() {
		t.Fatal("first Start() should begin a run")
	}

	again, started := task.Start()
	if started {
		t.Error("second Start() should be a no-op")
	}
	if again != tok || !task.Live(tok) {
		t.Errorf("Start() while running changed the token: %d -> %d", tok, again)
	}
}

func TestTaskStopIsIdempotent(t *testing.T) {
	var task Task

	if task.Stop() {
		t.Error("Stop() on a fresh task should report false")
	}

	tok, _ := task.Start()
	if !task.Stop() {
		t.Error("Stop() on a running task should report true")
	}
	if task.Stop() {
		t.Error("second Stop() should report false")
	}
	if task.Live(tok) || task.Running() {
		t.Error("token must be dead after Stop()")
	}
}

func TestTaskRestartInvalidatesPreviousRun(t *testing.T) {
	var task Task

	first, _ := task.Start()
	second := task.Restart()

	if first == second {
		t.Fatal("Restart() must issue a new token")
	}
	if task.Live(first) {
		t.Error("previous token still live after Restart()")
	}
	if !task.Live(second) {
		t.Error("new token not live after Restart()")
	}

	// Restarting a stopped task also works
	task.Stop()
	third := task.Restart()
	if !task.Live(third) || task.Live(second) {
		t.Error("Restart() of a stopped task should start a fresh run")
	}
}

func TestTaskStopThenStartIssuesFreshToken(t *testing.T) {
	var task Task

	first, _ := task.Start()
	task.Stop()
	second, started := task.Start()

	if !started {
		t.Fatal("Start() after Stop() should begin a run")
	}
	if task.Live(first) {
		t.Error("a token from an earlier run came back to life")
	}
	if !task.Live(second) {
		t.Error("new token should be live")
	}
}

func TestTaskLiveZeroToken(t *testing.T) {
	var task Task
	if task.Live(0) {
		t.Error("zero token should never be live")
	}
}
