package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/comment/style"
	"github.com/dshills/commentary/internal/comment/toggle"
)

// CommentModule exposes the toggle engine as the Lua table "comment".
// Buffer number 0 means the current buffer.
type CommentModule struct {
	engine  *toggle.Engine
	host    toggle.Host
	current int
}

// NewCommentModule creates the module. current is the buffer used when a
// script passes 0 or omits the buffer number.
func NewCommentModule(engine *toggle.Engine, host toggle.Host, current int) *CommentModule {
	return &CommentModule{engine: engine, host: host, current: current}
}

// Name returns the module name.
func (m *CommentModule) Name() string {
	return "comment"
}

// Register registers the module into the Lua state.
func (m *CommentModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "toggle", L.NewFunction(m.toggle))
	L.SetField(mod, "analyze", L.NewFunction(m.analyze))
	L.SetField(mod, "convert", L.NewFunction(m.convert))
	L.SetField(mod, "is_commented", L.NewFunction(m.isCommented))
	L.SetField(mod, "resolve", L.NewFunction(m.resolve))
	L.SetField(mod, "group", L.NewFunction(m.group))
	L.SetField(mod, "lines", L.NewFunction(m.lines))
	L.SetField(mod, "current", L.NewFunction(m.currentBuffer))

	L.SetGlobal(m.Name(), mod)
	return nil
}

func (m *CommentModule) bufnr(n int) int {
	if n == 0 {
		return m.current
	}
	return n
}

// toggle(bufnr, start, end [, opts]) -> ok, message
// opts: { style = "line"|"block", force_comment = bool, force_uncomment = bool }
func (m *CommentModule) toggle(L *lua.LState) int {
	bufnr := m.bufnr(L.CheckInt(1))
	start := L.CheckInt(2)
	end := L.CheckInt(3)
	opts := checkOptions(L, 4)

	res, err := m.engine.ToggleRange(bufnr, start, end, opts)
	if err != nil {
		L.RaiseError("toggle: %v", err)
		return 0
	}
	L.Push(lua.LBool(res.OK))
	L.Push(lua.LString(res.Message))
	return 2
}

func checkOptions(L *lua.LState, n int) toggle.Options {
	var opts toggle.Options
	tbl := L.OptTable(n, nil)
	if tbl == nil {
		return opts
	}

	if v := tbl.RawGetString("style"); v != lua.LNil {
		opts.StyleType = checkKind(L, "toggle", v)
	}
	opts.ForceComment = lua.LVAsBool(tbl.RawGetString("force_comment"))
	opts.ForceUncomment = lua.LVAsBool(tbl.RawGetString("force_uncomment"))
	return opts
}

func checkKind(L *lua.LState, fn string, v lua.LValue) style.Kind {
	s, ok := v.(lua.LString)
	if !ok {
		L.RaiseError("%s: %v: got %s", fn, toggle.ErrInvalidStyleType, v.Type())
		return 0
	}
	k, err := style.ParseKind(string(s))
	if err != nil {
		L.RaiseError("%s: %v: %q", fn, toggle.ErrInvalidStyleType, string(s))
		return 0
	}
	return k
}

// analyze(bufnr, start, end) -> state, counts | nil, message
// state is "all", "none" or "mixed"; counts is
// { commented = n, uncommented = n, blank = n, wrapped = bool }.
func (m *CommentModule) analyze(L *lua.LState) int {
	bufnr := m.bufnr(L.CheckInt(1))
	start := L.CheckInt(2)
	end := L.CheckInt(3)

	a := m.engine.AnalyzeRange(bufnr, start, end)
	if !a.OK {
		L.Push(lua.LNil)
		L.Push(lua.LString(a.Message))
		return 2
	}

	counts := L.NewTable()
	counts.RawSetString("commented", lua.LNumber(a.Commented))
	counts.RawSetString("uncommented", lua.LNumber(a.Uncommented))
	counts.RawSetString("blank", lua.LNumber(a.Blank))
	counts.RawSetString("wrapped", lua.LBool(a.Wrapped))

	L.Push(lua.LString(a.State.String()))
	L.Push(counts)
	return 2
}

// convert(bufnr, start, end, kind) -> ok, message
func (m *CommentModule) convert(L *lua.LState) int {
	bufnr := m.bufnr(L.CheckInt(1))
	start := L.CheckInt(2)
	end := L.CheckInt(3)
	kind := checkKind(L, "convert", L.CheckAny(4))

	res, err := m.engine.ConvertRange(bufnr, start, end, kind)
	if err != nil {
		L.RaiseError("convert: %v", err)
		return 0
	}
	L.Push(lua.LBool(res.OK))
	L.Push(lua.LString(res.Message))
	return 2
}

// is_commented(line, lang) -> bool
func (m *CommentModule) isCommented(L *lua.LState) int {
	line := L.CheckString(1)
	lang := L.CheckString(2)
	L.Push(lua.LBool(m.engine.IsCommented(line, lang)))
	return 1
}

// resolve(lang [, template]) -> table | nil
// The table has line, block = { start, end }, nesting, markup and source.
func (m *CommentModule) resolve(L *lua.LState) int {
	lang := L.CheckString(1)
	tmpl := L.OptString(2, "")

	res, ok := m.engine.Resolver().Resolve(resolve.Request{Language: lang, Template: tmpl})
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(styleTable(L, res))
	return 1
}

func styleTable(L *lua.LState, res resolve.Resolution) *lua.LTable {
	s := res.Style
	tbl := L.NewTable()
	if s.HasLine() {
		tbl.RawSetString("line", lua.LString(s.Line))
	}
	if s.HasBlock() {
		block := L.NewTable()
		block.Append(lua.LString(s.Block.Start))
		block.Append(lua.LString(s.Block.End))
		tbl.RawSetString("block", block)
	}
	tbl.RawSetString("nesting", lua.LBool(s.Nesting))
	tbl.RawSetString("markup", lua.LBool(s.Markup))
	tbl.RawSetString("source", lua.LString(res.Source.String()))
	return tbl
}

// group(fn [, bufnr]) -> true | false, message
// Runs fn inside one edit group so all of its edits undo together.
func (m *CommentModule) group(L *lua.LState) int {
	fn := L.CheckFunction(1)
	bufnr := m.bufnr(L.OptInt(2, 0))

	buf, ok := m.host.Buffer(bufnr)
	if !ok || !buf.IsValid() {
		L.Push(lua.LFalse)
		L.Push(lua.LString(toggle.ErrInvalidBuffer.Error()))
		return 2
	}

	err := buf.Group("Lua Edit", func() error {
		return L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	})
	if err != nil {
		L.RaiseError("group: %v", err)
		return 0
	}
	L.Push(lua.LTrue)
	return 1
}

// lines(bufnr, start, end) -> { string } | nil, message
func (m *CommentModule) lines(L *lua.LState) int {
	bufnr := m.bufnr(L.CheckInt(1))
	start := L.CheckInt(2)
	end := L.CheckInt(3)

	buf, ok := m.host.Buffer(bufnr)
	if !ok || !buf.IsValid() {
		L.Push(lua.LNil)
		L.Push(lua.LString(toggle.ErrInvalidBuffer.Error()))
		return 2
	}
	lines, err := buf.ReadLines(start, end)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	tbl := L.CreateTable(len(lines), 0)
	for _, line := range lines {
		tbl.Append(lua.LString(line))
	}
	L.Push(tbl)
	return 1
}

// current() -> bufnr
func (m *CommentModule) currentBuffer(L *lua.LState) int {
	L.Push(lua.LNumber(m.current))
	return 1
}
