package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hellno/tiny-slither/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"w is up", runeKey('w'), core.ActionUp, false},
		{"k is up", runeKey('k'), core.ActionUp, false},
		{"arrow up", tea.KeyMsg(tea.Key{Type: tea.KeyUp}), core.ActionUp, false},
		{"s is down", runeKey('s'), core.ActionDown, false},
		{"a is left", runeKey('a'), core.ActionLeft, false},
		{"h is left", runeKey('h'), core.ActionLeft, false},
		{"d is right", runeKey('d'), core.ActionRight, false},
		{"arrow right", tea.KeyMsg(tea.Key{Type: tea.KeyRight}), core.ActionRight, false},
		{"p is pause", runeKey('p'), core.ActionPause, false},
		{"r is restart", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}), core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.want {
				t.Errorf("action = %v, expected %v", action, tc.want)
			}
			if isQuit != tc.wantQuit {
				t.Errorf("isQuit = %v, expected %v", isQuit, tc.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('w'), &frame); quit {
		t.Error("w should not be a quit request")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame should record ActionUp")
	}

	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("q should be a quit request")
	}
}
