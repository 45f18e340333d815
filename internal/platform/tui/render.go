package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-blaster/internal/arith"
	"github.com/vovakirdan/math-blaster/internal/core"
	"github.com/vovakirdan/math-blaster/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	heartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	toastStyles = map[game.Severity]lipgloss.Style{
		game.SeverityInfo:    toastBase.BorderForeground(lipgloss.Color("12")),
		game.SeveritySuccess: toastBase.BorderForeground(lipgloss.Color("10")),
		game.SeverityWarning: toastBase.BorderForeground(lipgloss.Color("11")),
		game.SeverityError:   toastBase.BorderForeground(lipgloss.Color("9")),
	}
)

var toastBase = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawPlayfield draws the border, the floor line and every visible problem.
// Problems still above the top edge are not drawn.
func DrawPlayfield(s *core.Screen, st game.Snapshot) {
	s.Clear()
	box := s.Bounds()
	s.DrawBox(box, core.ColorGray)

	field := box.Inset(1)
	if field.H <= 1 || field.W <= 0 {
		return
	}
	// Bottom row of the field is the floor
	floorRow := field.Bottom() - 1
	s.DrawHLine(field.X, floorRow, field.W, '▔', core.ColorRed)
	field.H--

	for _, p := range st.Problems {
		row, ok := core.ProjectY(p.Y, st.Floor, field)
		if !ok {
			continue
		}
		label := problemLabel(p)
		col := core.ProjectX(p.X, field, core.TextWidth(label))
		color := core.DangerColor(p.Y/st.Floor, core.ProblemColor(p.ID))
		s.DrawTextColor(col, row, label, color)
	}
}

func problemLabel(p arith.Problem) string {
	return p.Text + " ?"
}

// renderStatus renders the header line: player, score, lives and speed.
func renderStatus(st game.Snapshot) string {
	lives := heartStyle.Render(strings.Repeat("♥", st.Lives)) +
		labelStyle.Render(strings.Repeat("♡", max(0, st.MaxLives-st.Lives)))

	livesLabel := labelStyle.Render("Lives ")
	if st.Status == game.StatusPlaying && st.Lives <= 1 {
		livesLabel = heartStyle.Bold(true).Render("Lives ")
	}

	parts := []string{
		titleStyle.Render("MATH BLASTER"),
		labelStyle.Render("Player ") + st.PlayerName,
		labelStyle.Render("Score ") + fmt.Sprint(st.Score),
		livesLabel + lives,
		labelStyle.Render("Speed ") + fmt.Sprintf("%.2f", st.Speed),
	}
	return strings.Join(parts, "   ")
}

// renderSettings renders the settings editor shown while idle.
func renderSettings(st game.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n\n")

	lo, hi := arith.DigitRange(st.Settings.Digits)
	fmt.Fprintf(&b, "%s %d  %s\n\n",
		labelStyle.Render("Digits"),
		st.Settings.Digits,
		labelStyle.Render(fmt.Sprintf("(operands %d to %d)", lo, hi)),
	)

	b.WriteString(labelStyle.Render("Operations"))
	b.WriteString("\n")
	for i, info := range arith.Operations() {
		mark, style := "[ ]", lipgloss.NewStyle()
		if st.Settings.HasOperation(info.Op) {
			mark, style = "[x]", selectedStyle
		}
		b.WriteString("  ")
		b.WriteString(style.Render(fmt.Sprintf("%d %s %s (%s)", i+1, mark, info.Label, info.Op.Symbol())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Player: %s\n", titleStyle.Render(st.PlayerName))
	return panelStyle.Render(b.String())
}

// renderToasts stacks the active notices vertically.
func renderToasts(notices []game.Notice, width int) string {
	if len(notices) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(notices))
	for _, n := range notices {
		style, ok := toastStyles[n.Severity]
		if !ok {
			style = toastBase
		}
		text := titleStyle.Render(n.Title)
		if n.Description != "" {
			text += "\n" + n.Description
		}
		blocks = append(blocks, style.Render(text))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, blocks...))
}
