package registry

import "github.com/dshills/commentary/internal/comment/style"

var (
	cBlock    = style.Block{Start: "/*", End: "*/"}
	htmlBlock = style.Block{Start: "<!--", End: "-->"}
	jsxMarkup = style.Block{Start: "{/*", End: "*/}"}

	styleC       = style.CommentStyle{Line: "//", Block: cBlock}
	styleCNested = style.CommentStyle{Line: "//", Block: cBlock, Nesting: true}
	styleHash    = style.CommentStyle{Line: "#"}
	styleDash    = style.CommentStyle{Line: "--"}
	styleHTML    = style.CommentStyle{Block: htmlBlock}
	styleCSS     = style.CommentStyle{Block: cBlock}
	styleSemi    = style.CommentStyle{Line: ";"}

	jsxForm = style.CommentStyle{Block: jsxMarkup}
)

// builtin returns the built-in language table.
func builtin() []Definition {
	return []Definition{
		{Name: "c", Style: styleC, Aliases: []string{"h"}, Patterns: []string{"*.c", "*.h"}},
		{Name: "cpp", Style: styleC, Aliases: []string{"c++", "cc", "hpp"}, Patterns: []string{"*.cpp", "*.cc", "*.cxx", "*.hpp", "*.hh"}},
		{Name: "cs", Style: styleC, Aliases: []string{"csharp"}, Patterns: []string{"*.cs"}},
		{Name: "go", Style: styleC, Aliases: []string{"golang"}, Patterns: []string{"*.go"}},
		{Name: "gomod", Style: style.CommentStyle{Line: "//"}, Patterns: []string{"go.mod", "go.work"}},
		{Name: "java", Style: styleC, Patterns: []string{"*.java"}},
		{Name: "javascript", Style: styleC, Aliases: []string{"js", "mjs", "cjs"}, Patterns: []string{"*.js", "*.mjs", "*.cjs"}},
		{Name: "javascriptreact", Style: styleC, Aliases: []string{"jsx"}, Patterns: []string{"*.jsx"}, Markup: &jsxForm},
		{Name: "typescript", Style: styleC, Aliases: []string{"ts"}, Patterns: []string{"*.ts", "*.mts", "*.cts"}},
		{Name: "typescriptreact", Style: styleC, Aliases: []string{"tsx"}, Patterns: []string{"*.tsx"}, Markup: &jsxForm},
		{Name: "kotlin", Style: styleCNested, Aliases: []string{"kt"}, Patterns: []string{"*.kt", "*.kts"}},
		{Name: "scala", Style: styleCNested, Patterns: []string{"*.scala", "*.sc"}},
		{Name: "swift", Style: styleCNested, Patterns: []string{"*.swift"}},
		{Name: "rust", Style: styleCNested, Aliases: []string{"rs"}, Patterns: []string{"*.rs"}},
		{Name: "dart", Style: styleCNested, Patterns: []string{"*.dart"}},
		{Name: "zig", Style: style.CommentStyle{Line: "//"}, Patterns: []string{"*.zig"}},
		{Name: "php", Style: styleC, Patterns: []string{"*.php"}},
		{Name: "proto", Style: styleC, Aliases: []string{"protobuf"}, Patterns: []string{"*.proto"}},
		{Name: "d", Style: style.CommentStyle{Line: "//", Block: style.Block{Start: "/+", End: "+/"}, Nesting: true}, Patterns: []string{"*.d"}},

		{Name: "python", Style: styleHash, Aliases: []string{"py"}, Patterns: []string{"*.py", "*.pyi", "*.pyw"}},
		{Name: "ruby", Style: style.CommentStyle{Line: "#", Block: style.Block{Start: "=begin", End: "=end"}}, Aliases: []string{"rb"}, Patterns: []string{"*.rb", "Gemfile", "Rakefile"}},
		{Name: "bash", Style: styleHash, Aliases: []string{"sh", "zsh", "shell"}, Patterns: []string{"*.sh", "*.bash", "*.zsh", ".bashrc", ".zshrc"}},
		{Name: "fish", Style: styleHash, Patterns: []string{"*.fish"}},
		{Name: "perl", Style: styleHash, Aliases: []string{"pl"}, Patterns: []string{"*.pl", "*.pm"}},
		{Name: "r", Style: styleHash, Patterns: []string{"*.r", "*.R"}},
		{Name: "yaml", Style: styleHash, Aliases: []string{"yml"}, Patterns: []string{"*.yaml", "*.yml"}},
		{Name: "toml", Style: styleHash, Patterns: []string{"*.toml"}},
		{Name: "make", Style: styleHash, Aliases: []string{"makefile"}, Patterns: []string{"Makefile", "makefile", "GNUmakefile", "*.mk"}},
		{Name: "dockerfile", Style: styleHash, Aliases: []string{"docker"}, Patterns: []string{"Dockerfile", "*.dockerfile", "Containerfile"}},
		{Name: "cmake", Style: style.CommentStyle{Line: "#", Block: style.Block{Start: "#[[", End: "]]"}}, Patterns: []string{"CMakeLists.txt", "*.cmake"}},
		{Name: "elixir", Style: styleHash, Aliases: []string{"ex", "exs"}, Patterns: []string{"*.ex", "*.exs"}},
		{Name: "nim", Style: style.CommentStyle{Line: "#", Block: style.Block{Start: "#[", End: "]#"}, Nesting: true}, Patterns: []string{"*.nim"}},
		{Name: "julia", Style: style.CommentStyle{Line: "#", Block: style.Block{Start: "#=", End: "=#"}, Nesting: true}, Aliases: []string{"jl"}, Patterns: []string{"*.jl"}},
		{Name: "powershell", Style: style.CommentStyle{Line: "#", Block: style.Block{Start: "<#", End: "#>"}}, Aliases: []string{"ps1"}, Patterns: []string{"*.ps1", "*.psm1"}},
		{Name: "terraform", Style: style.CommentStyle{Line: "#", Block: cBlock}, Aliases: []string{"hcl", "tf"}, Patterns: []string{"*.tf", "*.hcl"}},
		{Name: "nix", Style: style.CommentStyle{Line: "#", Block: cBlock}, Patterns: []string{"*.nix"}},

		{Name: "lua", Style: style.CommentStyle{Line: "--", Block: style.Block{Start: "--[[", End: "]]"}}, Patterns: []string{"*.lua"}},
		{Name: "sql", Style: style.CommentStyle{Line: "--", Block: cBlock}, Aliases: []string{"mysql", "pgsql"}, Patterns: []string{"*.sql"}},
		{Name: "haskell", Style: style.CommentStyle{Line: "--", Block: style.Block{Start: "{-", End: "-}"}, Nesting: true}, Aliases: []string{"hs"}, Patterns: []string{"*.hs"}},
		{Name: "elm", Style: style.CommentStyle{Line: "--", Block: style.Block{Start: "{-", End: "-}"}, Nesting: true}, Patterns: []string{"*.elm"}},
		{Name: "ada", Style: styleDash, Patterns: []string{"*.adb", "*.ads"}},

		{Name: "ocaml", Style: style.CommentStyle{Block: style.Block{Start: "(*", End: "*)"}, Nesting: true}, Aliases: []string{"ml"}, Patterns: []string{"*.ml", "*.mli"}},
		{Name: "fsharp", Style: style.CommentStyle{Line: "//", Block: style.Block{Start: "(*", End: "*)"}, Nesting: true}, Aliases: []string{"fs"}, Patterns: []string{"*.fs", "*.fsx"}},
		{Name: "pascal", Style: style.CommentStyle{Line: "//", Block: style.Block{Start: "{", End: "}"}}, Patterns: []string{"*.pas"}},

		{Name: "lisp", Style: style.CommentStyle{Line: ";", Block: style.Block{Start: "#|", End: "|#"}, Nesting: true}, Aliases: []string{"commonlisp"}, Patterns: []string{"*.lisp", "*.cl"}},
		{Name: "clojure", Style: styleSemi, Aliases: []string{"clj"}, Patterns: []string{"*.clj", "*.cljs", "*.edn"}},
		{Name: "scheme", Style: style.CommentStyle{Line: ";", Block: style.Block{Start: "#|", End: "|#"}, Nesting: true}, Aliases: []string{"racket"}, Patterns: []string{"*.scm", "*.rkt"}},
		{Name: "ini", Style: styleSemi, Aliases: []string{"dosini"}, Patterns: []string{"*.ini", "*.cfg"}},
		{Name: "asm", Style: styleSemi, Patterns: []string{"*.asm", "*.s"}},

		{Name: "html", Style: styleHTML, Aliases: []string{"htm", "xhtml"}, Patterns: []string{"*.html", "*.htm"}},
		{Name: "xml", Style: styleHTML, Aliases: []string{"svg", "xsd"}, Patterns: []string{"*.xml", "*.svg", "*.xsd"}},
		{Name: "markdown", Style: styleHTML, Aliases: []string{"md"}, Patterns: []string{"*.md", "*.markdown"}},
		{Name: "vue", Style: styleHTML, Patterns: []string{"*.vue"}},
		{Name: "svelte", Style: styleHTML, Patterns: []string{"*.svelte"}},
		{Name: "css", Style: styleCSS, Patterns: []string{"*.css"}},
		{Name: "scss", Style: styleC, Patterns: []string{"*.scss"}},
		{Name: "less", Style: styleC, Patterns: []string{"*.less"}},

		{Name: "vim", Style: style.CommentStyle{Line: `"`}, Aliases: []string{"vimscript"}, Patterns: []string{"*.vim", ".vimrc"}},
		{Name: "tex", Style: style.CommentStyle{Line: "%"}, Aliases: []string{"latex"}, Patterns: []string{"*.tex", "*.sty"}},
		{Name: "erlang", Style: style.CommentStyle{Line: "%"}, Aliases: []string{"erl"}, Patterns: []string{"*.erl", "*.hrl"}},
		{Name: "matlab", Style: style.CommentStyle{Line: "%", Block: style.Block{Start: "%{", End: "%}"}}, Patterns: []string{"*.m"}},
		{Name: "handlebars", Style: style.CommentStyle{Block: style.Block{Start: "{{!--", End: "--}}"}}, Aliases: []string{"hbs"}, Patterns: []string{"*.hbs", "*.handlebars"}},
		{Name: "jinja", Style: style.CommentStyle{Block: style.Block{Start: "{#", End: "#}"}}, Aliases: []string{"jinja2", "twig"}, Patterns: []string{"*.j2", "*.jinja", "*.twig"}},
		{Name: "gotmpl", Style: style.CommentStyle{Block: style.Block{Start: "{{/*", End: "*/}}"}}, Aliases: []string{"gohtmltmpl"}, Patterns: []string{"*.tmpl", "*.gotmpl"}},
		{Name: "batch", Style: style.CommentStyle{Line: "REM"}, Aliases: []string{"bat", "cmd"}, Patterns: []string{"*.bat", "*.cmd"}},
	}
}
