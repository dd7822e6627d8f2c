package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// commands is the closed set of actions that reach the engine. Pause,
// restart and quit are handled by the adapter or the platform.
var commands = map[core.Action]engine.Command{
	core.ActionLeft:       engine.CommandMoveLeft,
	core.ActionRight:      engine.CommandMoveRight,
	core.ActionRotate:     engine.CommandRotate,
	core.ActionSoftDrop:   engine.CommandSoftDrop,
	core.ActionDropFaster: engine.CommandDropFaster,
}

func commandFor(a core.Action) (engine.Command, bool) {
	cmd, ok := commands[a]
	return cmd, ok
}
