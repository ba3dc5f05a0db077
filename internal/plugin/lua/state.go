package lua

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single DoString, DoFile or Call.
const DefaultTimeout = 5 * time.Second

// Module is a set of Go functions installed into a State.
type Module interface {
	// Name is the global and require() name of the module.
	Name() string

	// Register installs the module's table into L.
	Register(L *lua.LState) error
}

// State wraps a restricted gopher-lua runtime.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// made through State; direct use of L bypasses it.
type State struct {
	L *lua.LState

	mu      sync.Mutex
	timeout time.Duration
	output  io.Writer
	closed  bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithTimeout sets the per-call execution timeout. Zero disables it.
func WithTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.timeout = d
	}
}

// WithOutput sets where print writes.
func WithOutput(w io.Writer) StateOption {
	return func(s *State) {
		if w != nil {
			s.output = w
		}
	}
}

// NewState creates a restricted Lua state.
func NewState(opts ...StateOption) *State {
	s := &State{
		timeout: DefaultTimeout,
		output:  os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	restrict(L)
	installPrint(L, s.output)
	s.L = L
	return s
}

// Register installs m as a global and as a preloaded module.
func (s *State) Register(m Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	if err := m.Register(s.L); err != nil {
		return fmt.Errorf("register module %s: %w", m.Name(), err)
	}
	mod := s.L.GetGlobal(m.Name())
	s.L.PreloadModule(m.Name(), func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})
	return nil
}

// DoString executes a chunk of Lua.
func (s *State) DoString(ctx context.Context, code string) error {
	return s.run(ctx, func() error {
		return s.L.DoString(code)
	})
}

// DoFile executes a Lua file. The path is read by Go; scripts themselves
// cannot load files.
func (s *State) DoFile(ctx context.Context, path string) error {
	return s.run(ctx, func() error {
		return s.L.DoFile(path)
	})
}

// Call calls a global Lua function and returns its results.
func (s *State) Call(ctx context.Context, fn string, args ...lua.LValue) ([]lua.LValue, error) {
	var results []lua.LValue
	err := s.run(ctx, func() error {
		fnVal := s.L.GetGlobal(fn)
		if fnVal.Type() != lua.LTFunction {
			return fmt.Errorf("%q is not a function (got %s)", fn, fnVal.Type())
		}

		top := s.L.GetTop()
		s.L.Push(fnVal)
		for _, arg := range args {
			s.L.Push(arg)
		}
		if err := s.L.PCall(len(args), lua.MultRet, nil); err != nil {
			return err
		}

		n := s.L.GetTop() - top
		results = make([]lua.LValue, 0, n)
		for i := 1; i <= n; i++ {
			results = append(results, s.L.Get(top+i))
		}
		s.L.Pop(n)
		return nil
	})
	return results, err
}

// run executes fn under the lock with the timeout and panic recovery.
func (s *State) run(ctx context.Context, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	err = fn()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
	}
	return err
}

// GetGlobal returns a global variable.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// Close releases the Lua state. Later calls return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
