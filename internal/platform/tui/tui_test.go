package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct {
	resets  int
	steps   int
	inputs  [][]core.Action
	resized [2]int
	state   core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Actions())
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.state = core.GameState{}
	}
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(dst *core.Screen) { dst.DrawTextColor(0, 0, "stub", core.ColorCyan) }
func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"w", runes("w"), core.ActionRotate},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDropFaster},
		{"p", runes("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("z"), core.ActionNone},
		{"restart while disabled", runes("r"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, keys.Action(tc.msg))
		})
	}

	keys.Restart.SetEnabled(true)
	assert.Equal(t, core.ActionRestart, keys.Action(runes("r")))
}

func TestRenderPlainProfile(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColor(0, 1, "██", core.ColorCyan)

	assert.Equal(t, s.String(), NewScreenRenderer(r).Render(s))
}

func TestRenderColorRuns(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	s := core.NewScreen(4, 1)
	s.DrawTextColor(0, 0, "xx", core.ColorOrange)

	out := NewScreenRenderer(r).Render(s)

	assert.Contains(t, out, "208")
	assert.Equal(t, 1, strings.Count(out, "xx"), "same-color cells share one run")
	assert.True(t, strings.HasSuffix(out, "  "))
}

func newTestModel(g *stubGame) Model {
	r := lipgloss.NewRenderer(io.Discard)
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, WithRenderer(r))
}

func TestModelCollectsInputPerTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	require.Equal(t, 1, g.resets)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, cmd := next.Update(TickMsg{})

	require.NotNil(t, cmd, "tick loop continues")
	require.Equal(t, 1, g.steps)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionRotate}, g.inputs[0])

	_, _ = next.Update(TickMsg{})
	assert.Empty(t, g.inputs[1], "input is cleared after each tick")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{})

	next, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, [2]int{100, 30 - helpHeight}, g.resized)
	assert.Equal(t, 1, g.resets, "resize must not restart the game")
}

func TestModelRestartEnabledOnGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	next, _ := m.Update(runes("r"))
	next, _ = next.Update(TickMsg{})
	assert.Empty(t, g.inputs[0], "restart is inactive while playing")

	g.state.GameOver = true
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(runes("r"))
	_, _ = next.Update(TickMsg{})

	assert.Equal(t, []core.Action{core.ActionRestart}, g.inputs[2])
	assert.False(t, g.state.GameOver)
}

func TestModelView(t *testing.T) {
	m := newTestModel(&stubGame{})

	view := m.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "stub"))
	assert.Contains(t, lines[9], "left")
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, "16.666666ms", tickInterval(60).String())
	assert.Equal(t, tickInterval(60), tickInterval(0))
}
