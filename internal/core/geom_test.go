package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"right edge (exclusive)", 30, 15, false},
		{"bottom edge (exclusive)", 15, 30, false},
		{"left of rect", 5, 15, false},
		{"above rect", 15, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(1)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset should not go negative, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestProjectX(t *testing.T) {
	field := NewRect(1, 1, 100, 20)

	tests := []struct {
		name     string
		pct      float64
		labelW   int
		expected int
	}{
		{"centered on position", 50, 8, 47},
		{"kept inside on the left", 0, 8, 1},
		{"kept inside on the right", 100, 8, 93},
		{"out of range pct", 150, 4, 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectX(tt.pct, field, tt.labelW); got != tt.expected {
				t.Errorf("ProjectX(%v) = %d, expected %d", tt.pct, got, tt.expected)
			}
		})
	}
}

func TestProjectY(t *testing.T) {
	field := NewRect(0, 2, 40, 20)

	tests := []struct {
		name    string
		y       float64
		row     int
		visible bool
	}{
		{"above the field", -10, 0, false},
		{"top", 0, 2, true},
		{"middle", 300, 12, true},
		{"just above floor", 599, 21, true},
		{"at floor", 600, 21, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := ProjectY(tt.y, 600, field)
			if ok != tt.visible {
				t.Fatalf("visible = %v, expected %v", ok, tt.visible)
			}
			if ok && row != tt.row {
				t.Errorf("row = %d, expected %d", row, tt.row)
			}
		})
	}
}

func TestColors(t *testing.T) {
	if ProblemColor(0) != ProblemColor(len(problemPalette)) {
		t.Error("ProblemColor should cycle through the palette")
	}
	if ProblemColor(-3) != ProblemColor(3) {
		t.Error("negative ids should not panic and map like positive ones")
	}
	if DangerColor(0.9, ColorCyan) != ColorBrightRed {
		t.Error("labels near the floor should be red")
	}
	if DangerColor(0.2, ColorCyan) != ColorCyan {
		t.Error("labels far from the floor keep their color")
	}
}
