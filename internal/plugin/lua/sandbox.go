package lua

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// blockedGlobals load code from outside the registered modules.
var blockedGlobals = []string{"dofile", "loadfile", "load", "loadstring"}

// openSafeLibraries opens the libraries scripts may use. io, os and debug
// are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenPackage(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// restrict removes the globals that load code and stops require from
// searching the file system. Only modules registered with PreloadModule
// and the opened libraries remain loadable.
func restrict(L *lua.LState) {
	for _, name := range blockedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	pkg, ok := L.GetGlobal("package").(*lua.LTable)
	if !ok {
		return
	}
	L.SetField(pkg, "path", lua.LString(""))
	L.SetField(pkg, "cpath", lua.LString(""))

	// The first loader serves package.preload; the rest search the disk.
	if loaders, ok := L.GetField(pkg, "loaders").(*lua.LTable); ok {
		for i := loaders.Len(); i > 1; i-- {
			loaders.Remove(i)
		}
	}
}

// installPrint replaces print with one writing to w.
func installPrint(L *lua.LState, w io.Writer) {
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(w, strings.Join(parts, "\t"))
		return 0
	}))
}
