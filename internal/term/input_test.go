package term

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"phone3d/internal/phone"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"escape", tcell.KeyEscape, 0, Command{Kind: CommandQuit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Command{Kind: CommandQuit}},
		{"q", tcell.KeyRune, 'q', Command{Kind: CommandQuit}},
		{"arrow up", tcell.KeyUp, 0, Command{Kind: CommandPress, Control: phone.ControlVolumeUp}},
		{"arrow down", tcell.KeyDown, 0, Command{Kind: CommandPress, Control: phone.ControlVolumeDown}},
		{"p", tcell.KeyRune, 'p', Command{Kind: CommandPress, Control: phone.ControlPower}},
		{"plus", tcell.KeyRune, '+', Command{Kind: CommandPress, Control: phone.ControlVolumeUp}},
		{"minus", tcell.KeyRune, '-', Command{Kind: CommandPress, Control: phone.ControlVolumeDown}},
		{"r", tcell.KeyRune, 'R', Command{Kind: CommandReset}},
		{"unbound rune", tcell.KeyRune, 'x', Command{}},
		{"unbound key", tcell.KeyTab, 0, Command{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyCommand(tt.key, tt.r))
		})
	}
}

type pointerRecorder struct {
	calls []string
}

func (p *pointerRecorder) PointerDown(x, y float64) bool {
	p.calls = append(p.calls, fmt.Sprintf("down %.1f,%.1f", x, y))
	return false
}

func (p *pointerRecorder) PointerMove(x, y float64) {
	p.calls = append(p.calls, fmt.Sprintf("move %.1f,%.1f", x, y))
}

func (p *pointerRecorder) PointerUp() { p.calls = append(p.calls, "up") }

func TestRouteMouse(t *testing.T) {
	type report struct {
		down bool
		x, y float64
	}
	tests := []struct {
		name    string
		reports []report
		want    []string
	}{
		{
			name:    "press drag release",
			reports: []report{{true, 1.5, 3}, {true, 4.5, 3}, {true, 4.5, 7}, {false, 4.5, 7}},
			want:    []string{"down 1.5,3.0", "move 4.5,3.0", "move 4.5,7.0", "up"},
		},
		{
			name:    "hover is ignored",
			reports: []report{{false, 1, 1}, {false, 2, 2}},
			want:    nil,
		},
		{
			name:    "second press after release",
			reports: []report{{true, 1, 1}, {false, 1, 1}, {true, 2, 2}},
			want:    []string{"down 1.0,1.0", "up", "down 2.0,2.0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &pointerRecorder{}
			down := false
			for _, r := range tt.reports {
				down = routeMouse(rec, down, r.down, r.x, r.y)
				assert.Equal(t, r.down, down)
			}
			assert.Equal(t, tt.want, rec.calls)
		})
	}
}
