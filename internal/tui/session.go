// Package tui runs an interactive game on a raw-mode terminal.
package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/arcanaland/memorymatch/internal/game"
	"github.com/arcanaland/memorymatch/internal/render"
)

// Session couples an engine with a cursor and draws it to a terminal
type Session struct {
	engine *game.Engine
	logger *slog.Logger
	width  int
	cursor int
	notice string
}

func NewSession(engine *game.Engine, width int, logger *slog.Logger) *Session {
	return &Session{
		engine: engine,
		logger: logger,
		width:  width,
	}
}

// Cursor returns the index of the highlighted card
func (s *Session) Cursor() int {
	return s.cursor
}

// Handle applies one key. It reports whether the session should end.
func (s *Session) Handle(k Key) bool {
	s.notice = ""
	snap := s.engine.Snapshot()
	cols := game.Columns(snap.GridSize)
	n := len(snap.Cards)

	switch k {
	case KeyUp:
		if s.cursor-cols >= 0 {
			s.cursor -= cols
		}
	case KeyDown:
		if s.cursor+cols < n {
			s.cursor += cols
		}
	case KeyLeft:
		if s.cursor > 0 {
			s.cursor--
		}
	case KeyRight:
		if s.cursor+1 < n {
			s.cursor++
		}
	case KeyChoose:
		if s.cursor < n {
			s.engine.ChooseCard(snap.Cards[s.cursor].ID)
		}
	case KeyReset:
		s.newGame(snap.GridSize)
	case KeySize2:
		s.newGame(2)
	case KeySize4:
		s.newGame(4)
	case KeySize6:
		s.newGame(6)
	case KeyQuit:
		return true
	}
	return false
}

func (s *Session) newGame(size int) {
	if err := s.engine.NewGame(size); err != nil {
		s.logger.Warn("cannot start game", "grid_size", size, "error", err)
		s.notice = err.Error()
		return
	}
	s.cursor = 0
}

// Run draws the board and processes input until the player quits, input
// ends or ctx is cancelled. The board is redrawn after every key and every
// engine change, including resolutions fired by the engine's timer.
//
// The goroutine reading in stays blocked in Read after Run returns if in
// never yields again; callers pass os.Stdin and exit shortly after.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	keys := make(chan Key)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := in.Read(buf)
			for _, k := range Decode(buf[:n]) {
				select {
				case keys <- k:
				case <-done:
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	redraw := make(chan struct{}, 1)
	unsubscribe := s.engine.Subscribe(func(c game.Change) {
		s.logger.Debug("engine changed", "kind", c.Kind.String(), "state", c.Snapshot.State.String())
		select {
		case redraw <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	if err := s.draw(out); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case k := <-keys:
			if s.Handle(k) {
				return nil
			}
			if err := s.draw(out); err != nil {
				return err
			}
		case <-redraw:
			if err := s.draw(out); err != nil {
				return err
			}
		}
	}
}

// draw writes one frame. Raw mode disables output processing, so every
// newline needs an explicit carriage return.
func (s *Session) draw(out io.Writer) error {
	frame := render.Frame(s.engine.Snapshot(), s.cursor, s.width)
	if s.notice != "" {
		frame += "\n" + s.notice + "\n"
	}
	_, err := io.WriteString(out, strings.ReplaceAll(frame, "\n", "\r\n"))
	return err
}
