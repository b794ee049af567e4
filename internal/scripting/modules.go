package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/swngen/internal/game/dice"
)

// RegisterModules installs the swn table into L:
//
//	swn.roll(expr) -> total    rolls a dice expression such as "2d6+1"
//
// A malformed expression raises a Lua error.
//
// Precondition: L must come from NewSandboxedState; src must be non-nil.
func RegisterModules(L *lua.LState, src dice.Source) {
	swn := L.NewTable()
	L.SetField(swn, "roll", L.NewFunction(func(L *lua.LState) int {
		res, err := dice.RollExpr(L.CheckString(1), src)
		if err != nil {
			L.RaiseError("swn.roll: %s", err.Error())
			return 0
		}
		L.Push(lua.LNumber(res.Total()))
		return 1
	}))
	L.SetGlobal("swn", swn)
}
