// Package render draws the game board for an ANSI terminal.
package render

import (
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/memorymatch/internal/card"
	"github.com/arcanaland/memorymatch/internal/game"
)

// cellWidth is the visible width of one card including its cursor marks
const cellWidth = 6

var (
	gradientFrom = colorful.Color{R: 0.50, G: 0.00, B: 0.50} // purple
	gradientTo   = colorful.Color{R: 0.00, G: 0.00, B: 1.00} // blue

	faceDown   = colorize.New(colorize.FgHiWhite, colorize.BgBlue)
	faceUp     = colorize.New(colorize.FgBlack, colorize.BgHiWhite)
	matched    = colorize.New(colorize.Faint)
	cursorMark = colorize.New(colorize.FgHiYellow, colorize.Bold)
	label      = colorize.New(colorize.FgCyan)
	won        = colorize.New(colorize.FgHiWhite, colorize.Bold)
)

// TerminalWidth returns the width of the terminal on fd, or 80 if unknown
func TerminalWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// StdoutWidth returns the width of the terminal attached to stdout
func StdoutWidth() int {
	return TerminalWidth(int(os.Stdout.Fd()))
}

// Banner renders title with a purple to blue gradient blended in Lab space
func Banner(title string) string {
	if colorize.NoColor {
		return title
	}

	runes := []rune(title)
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := gradientFrom.BlendLab(gradientTo, t).Clamped()
		red, green, blue := c.RGB255()
		fmt.Fprintf(&b, "\x1b[1;38;2;%d;%d;%dm%c", red, green, blue, r)
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// Cell renders a single card. The selected card is wrapped in cursor marks.
func Cell(c card.Card, selected bool) string {
	var face string
	switch {
	case c.Matched:
		face = matched.Sprintf(" %s ", c.Content)
	case c.FaceUp:
		face = faceUp.Sprintf(" %s ", c.Content)
	default:
		face = faceDown.Sprint(" ▒▒ ")
	}

	if selected {
		return cursorMark.Sprint("[") + face + cursorMark.Sprint("]")
	}
	return " " + face + " "
}

// Board renders the cards in rows of game.Columns(gridSize), centred in width
func Board(snap game.Snapshot, cursor, width int) string {
	cols := game.Columns(snap.GridSize)
	indent := (width - cols*cellWidth) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)

	var b strings.Builder
	for start := 0; start < len(snap.Cards); start += cols {
		end := min(start+cols, len(snap.Cards))
		b.WriteString(pad)
		for i := start; i < end; i++ {
			b.WriteString(Cell(snap.Cards[i], i == cursor))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// Status describes the grid and the turn in one line
func Status(snap game.Snapshot) string {
	return label.Sprint("Grid: ") + fmt.Sprintf("%dx%d (%d cards)", snap.GridSize, snap.GridSize, len(snap.Cards)) +
		label.Sprint("   Turn: ") + snap.State.String()
}

// WinBanner is shown once every pair has been found
func WinBanner() string {
	return won.Sprint("🎉 You Won! 🎉") + "\n" + "Press r to play again"
}

// Help lists the keys the play session understands
func Help() string {
	return label.Sprint("←↑↓→/hjkl") + " move  " +
		label.Sprint("space") + " flip  " +
		label.Sprint("r") + " reset  " +
		label.Sprint("2/4/6") + " grid size  " +
		label.Sprint("q") + " quit"
}

// Frame renders a whole screen: banner, board, status, win banner and help
func Frame(snap game.Snapshot, cursor, width int) string {
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	b.WriteString("\n")
	b.WriteString(center(Banner("Memory Match"), width))
	b.WriteString("\n\n")
	b.WriteString(Board(snap, cursor, width))
	b.WriteString(center(Status(snap), width))
	b.WriteString("\n\n")
	if snap.Won {
		for _, line := range strings.Split(WinBanner(), "\n") {
			b.WriteString(center(line, width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(center(Help(), width))
	b.WriteString("\n")
	return b.String()
}

// center pads s on the left so its visible text is centred in width
func center(s string, width int) string {
	visible := len([]rune(StripANSI(s)))
	if visible >= width {
		return s
	}
	return strings.Repeat(" ", (width-visible)/2) + s
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' || c == 'H' || c == 'J' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
