package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/swngen/internal/game/dice"
)

// CreditsHookName is the global a script defines to override starting credits:
//
//	function starting_credits(class, level, base) return base * 2 end
//
// base is the built-in formula's amount. Returning nil (or a non-number) keeps it.
const CreditsHookName = "starting_credits"

// Hooks owns one sandboxed VM holding every script in a directory and
// dispatches generation hooks into it.
//
// Hooks is safe for concurrent use; calls into the VM are serialized.
type Hooks struct {
	mu        sync.Mutex
	L         *lua.LState
	cancel    context.CancelFunc
	instLimit int
	logger    *zap.Logger
}

// LoadHooks creates a VM, registers the swn module and executes every *.lua
// file in dir in lexicographic order.
//
// Precondition: src and logger must be non-nil.
// Postcondition: returns an error if dir cannot be read or a script fails to load.
func LoadHooks(dir string, instLimit int, src dice.Source, logger *zap.Logger) (*Hooks, error) {
	if src == nil || logger == nil {
		panic("scripting.LoadHooks: precondition violated: nil argument")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading script dir %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	L, cancel := NewSandboxedState(instLimit)
	RegisterModules(L, src)
	for _, path := range files {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}
	logger.Debug("scripts loaded", zap.String("dir", dir), zap.Int("files", len(files)))
	return &Hooks{L: L, cancel: cancel, instLimit: instLimit, logger: logger}, nil
}

// Close releases the VM. Hooks must not be used afterwards.
func (h *Hooks) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancel()
	h.L.Close()
}

// Call invokes the named global with args under a fresh instruction budget.
// It returns LNil when the hook is undefined. Lua runtime errors are logged at
// Warn and reported as LNil, never propagated.
func (h *Hooks) Call(hook string, args ...lua.LValue) lua.LValue {
	h.mu.Lock()
	defer h.mu.Unlock()

	fn := h.L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil
	}
	cancel := withBudget(h.L, h.instLimit)
	defer cancel()

	if err := h.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		h.logger.Warn("scripting: Lua runtime error", zap.String("hook", hook), zap.Error(err))
		return lua.LNil
	}
	ret := h.L.Get(-1)
	h.L.Pop(1)
	return ret
}

// StartingCredits calls starting_credits(class, level, base), where base is
// the class formula's amount.
//
// Postcondition: ok is true only when the hook returned a non-negative number.
func (h *Hooks) StartingCredits(class string, level, base int) (int, bool) {
	ret := h.Call(CreditsHookName, lua.LString(class), lua.LNumber(level), lua.LNumber(base))
	n, ok := ret.(lua.LNumber)
	if !ok || n < 0 {
		return 0, false
	}
	return int(n), true
}
