package tui

import (
	"strings"
	"testing"

	"github.com/hellno/tiny-slither/internal/core"
)

func TestRenderScreenContent(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "hello")
	s.SetCell(0, 1, 'O', core.ColorBrightGreen)
	s.SetCell(1, 1, '*', core.ColorBrightRed)

	out := RenderScreen(s)

	if !strings.Contains(out, "hello") {
		t.Error("rendered output should contain plain text")
	}
	if !strings.Contains(out, "O") || !strings.Contains(out, "*") {
		t.Error("rendered output should contain colored cells")
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 newlines for 3 rows, got %d", strings.Count(out, "\n"))
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	// A row in a single color renders as one styled run, so the plain
	// characters stay adjacent in the output.
	s := core.NewScreen(5, 1)
	for x := 0; x < 5; x++ {
		s.SetCell(x, 0, 'o', core.ColorGreen)
	}

	out := RenderScreen(s)
	if !strings.Contains(out, "ooooo") {
		t.Errorf("same-colored run should stay contiguous, got %q", out)
	}
}
