package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	require.True(t, Exists("stub-a"))
	g, err := Create("stub-a")
	require.NoError(t, err)
	assert.Equal(t, "stub-a", g.ID())

	other, err := Create("stub-a")
	require.NoError(t, err)
	assert.NotSame(t, g, other, "each Create returns a fresh instance")
}

func TestCreateUnknown(t *testing.T) {
	g, err := Create("does-not-exist")

	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Exists("does-not-exist"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	assert.Panics(t, func() {
		Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	})
	assert.Panics(t, func() { Register("", nil) })
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z"} })
	Register("stub-m", func() Game { return &stubGame{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
	assert.Contains(t, list, GameInfo{ID: "stub-m", Title: "Stub stub-m"})
}
