package render

import (
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/memorymatch/internal/card"
	"github.com/arcanaland/memorymatch/internal/game"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := colorize.NoColor
	colorize.NoColor = !enabled
	t.Cleanup(func() { colorize.NoColor = prev })
}

func snapshot(gridSize int, cards ...card.Card) game.Snapshot {
	return game.Snapshot{GridSize: gridSize, Cards: cards}
}

func TestCell(t *testing.T) {
	withColor(t, false)

	down := card.New("🎮")
	assert.Equal(t, "  ▒▒  ", Cell(down, false))
	assert.Equal(t, "[ ▒▒ ]", Cell(down, true))

	up := down
	up.FaceUp = true
	assert.Equal(t, "  🎮  ", Cell(up, false))

	done := up
	done.Matched = true
	assert.Equal(t, "[ 🎮 ]", Cell(done, true))
}

func TestBoard_Layout(t *testing.T) {
	withColor(t, false)

	cards := make([]card.Card, 16)
	for i := range cards {
		cards[i] = card.Card{ID: uuid.New(), Content: "🎲"}
	}
	out := Board(snapshot(4, cards...), 0, 18)

	rows := strings.Split(strings.TrimRight(out, "\n"), "\n\n")
	require.Len(t, rows, 6, "16 cards in 3 columns")
	assert.Equal(t, 3, strings.Count(rows[0], "▒▒"))
	assert.Equal(t, 1, strings.Count(rows[5], "▒▒"))
	assert.True(t, strings.HasPrefix(rows[0], "["), "cursor on first card")
	assert.NotContains(t, rows[1], "[")
}

func TestBoard_Centred(t *testing.T) {
	withColor(t, false)

	a, b := card.New("A"), card.New("A")
	out := Board(snapshot(2, a, b), -1, 32)
	// 2 columns of 6 cells in 32 columns leaves 10 on each side
	assert.True(t, strings.HasPrefix(out, strings.Repeat(" ", 10)+"  ▒▒"))
}

func TestBanner(t *testing.T) {
	withColor(t, false)
	assert.Equal(t, "Memory Match", Banner("Memory Match"))

	withColor(t, true)
	out := Banner("Memory Match")
	assert.Contains(t, out, "\x1b[1;38;2;")
	assert.True(t, strings.HasSuffix(out, "\x1b[0m"))
	assert.Equal(t, "Memory Match", StripANSI(out))

	// Each end of the title gets a different colour
	codes := strings.Split(out, "\x1b[1;38;2;")
	require.Len(t, codes, len("Memory Match")+1)
	first, last := codes[1], codes[len(codes)-1]
	assert.NotEqual(t, first[:strings.Index(first, "m")], last[:strings.Index(last, "m")])
}

func TestFrame(t *testing.T) {
	withColor(t, false)

	a, b := card.New("A"), card.New("A")
	snap := snapshot(2, a, b)
	frame := Frame(snap, 0, 40)
	assert.Contains(t, frame, "Memory Match")
	assert.Contains(t, frame, "Grid: 2x2 (2 cards)")
	assert.Contains(t, frame, "Turn: idle")
	assert.NotContains(t, frame, "You Won")

	a.Matched, b.Matched = true, true
	snap = snapshot(2, a, b)
	snap.Won = true
	frame = Frame(snap, 0, 40)
	assert.Contains(t, frame, "You Won!")
	assert.Contains(t, frame, "Press r to play again")
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "hello", StripANSI("\x1b[31mhello\x1b[0m"))
	assert.Equal(t, "board", StripANSI("\x1b[H\x1b[2Jboard"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	assert.Equal(t, 80, TerminalWidth(-1))
}
