package taxonomy

// languageRanking is the fixed popularity ordering for programming languages.
// A language at index i scores 1000-i; anything absent scores 0. The order
// loosely follows industry usage surveys and is deliberately frozen so that
// repeated syncs produce identical scores.
var languageRanking = []string{
	"JavaScript",
	"Python",
	"TypeScript",
	"Java",
	"C#",
	"C++",
	"PHP",
	"C",
	"Go",
	"Rust",
	"Kotlin",
	"Swift",
	"Ruby",
	"Dart",
	"Shell",
	"Scala",
	"R",
	"Elixir",
	"Objective-C",
	"Lua",
	"Haskell",
	"Clojure",
	"Erlang",
	"Perl",
	"Julia",
	"F#",
	"OCaml",
	"Groovy",
	"Zig",
	"Crystal",
	"Nim",
	"Fortran",
	"COBOL",
	"Solidity",
	"Elm",
	"PureScript",
	"Racket",
	"Scheme",
	"Common Lisp",
	"Ada",
	"Prolog",
	"Smalltalk",
	"Assembly",
	"MATLAB",
	"Visual Basic .NET",
	"Delphi",
	"ABAP",
	"Apex",
	"PowerShell",
	"VHDL",
}

// languageMetadata carries paradigm/typing/website facts the remote dataset
// omits, keyed by the dataset's display name. Unlisted languages get the
// zero value (no paradigms, unknown typing, no website).
var languageMetadata = map[string]LanguageMeta{
	"JavaScript":  {Paradigms: []string{"event-driven", "functional", "imperative"}, Typing: "dynamic", Website: "https://developer.mozilla.org/docs/Web/JavaScript"},
	"TypeScript":  {Paradigms: []string{"object-oriented", "functional"}, Typing: "gradual", Website: "https://www.typescriptlang.org"},
	"Python":      {Paradigms: []string{"object-oriented", "imperative", "functional"}, Typing: "dynamic", Website: "https://www.python.org"},
	"Java":        {Paradigms: []string{"object-oriented", "concurrent"}, Typing: "static", Website: "https://www.java.com"},
	"C#":          {Paradigms: []string{"object-oriented", "functional"}, Typing: "static", Website: "https://learn.microsoft.com/dotnet/csharp"},
	"C++":         {Paradigms: []string{"object-oriented", "procedural", "generic"}, Typing: "static", Website: "https://isocpp.org"},
	"C":           {Paradigms: []string{"procedural", "imperative"}, Typing: "static", Website: "https://www.iso.org/standard/74528.html"},
	"PHP":         {Paradigms: []string{"object-oriented", "procedural"}, Typing: "dynamic", Website: "https://www.php.net"},
	"Go":          {Paradigms: []string{"concurrent", "imperative"}, Typing: "static", Website: "https://go.dev"},
	"Rust":        {Paradigms: []string{"functional", "concurrent", "imperative"}, Typing: "static", Website: "https://www.rust-lang.org"},
	"Kotlin":      {Paradigms: []string{"object-oriented", "functional"}, Typing: "static", Website: "https://kotlinlang.org"},
	"Swift":       {Paradigms: []string{"object-oriented", "functional", "protocol-oriented"}, Typing: "static", Website: "https://www.swift.org"},
	"Ruby":        {Paradigms: []string{"object-oriented", "imperative"}, Typing: "dynamic", Website: "https://www.ruby-lang.org"},
	"Dart":        {Paradigms: []string{"object-oriented"}, Typing: "static", Website: "https://dart.dev"},
	"Scala":       {Paradigms: []string{"object-oriented", "functional"}, Typing: "static", Website: "https://www.scala-lang.org"},
	"R":           {Paradigms: []string{"array", "functional"}, Typing: "dynamic", Website: "https://www.r-project.org"},
	"Elixir":      {Paradigms: []string{"functional", "concurrent"}, Typing: "dynamic", Website: "https://elixir-lang.org"},
	"Objective-C": {Paradigms: []string{"object-oriented"}, Typing: "static", Website: "https://developer.apple.com"},
	"Lua":         {Paradigms: []string{"procedural", "scripting"}, Typing: "dynamic", Website: "https://www.lua.org"},
	"Haskell":     {Paradigms: []string{"functional", "lazy"}, Typing: "static", Website: "https://www.haskell.org"},
	"Clojure":     {Paradigms: []string{"functional"}, Typing: "dynamic", Website: "https://clojure.org"},
	"Erlang":      {Paradigms: []string{"functional", "concurrent"}, Typing: "dynamic", Website: "https://www.erlang.org"},
	"Perl":        {Paradigms: []string{"procedural", "scripting"}, Typing: "dynamic", Website: "https://www.perl.org"},
	"Julia":       {Paradigms: []string{"multiple-dispatch", "array"}, Typing: "dynamic", Website: "https://julialang.org"},
	"F#":          {Paradigms: []string{"functional"}, Typing: "static", Website: "https://fsharp.org"},
	"OCaml":       {Paradigms: []string{"functional", "imperative"}, Typing: "static", Website: "https://ocaml.org"},
	"Groovy":      {Paradigms: []string{"object-oriented", "scripting"}, Typing: "gradual", Website: "https://groovy-lang.org"},
	"Zig":         {Paradigms: []string{"imperative"}, Typing: "static", Website: "https://ziglang.org"},
	"Crystal":     {Paradigms: []string{"object-oriented"}, Typing: "static", Website: "https://crystal-lang.org"},
	"Nim":         {Paradigms: []string{"imperative", "functional"}, Typing: "static", Website: "https://nim-lang.org"},
	"Solidity":    {Paradigms: []string{"object-oriented"}, Typing: "static", Website: "https://soliditylang.org"},
	"Elm":         {Paradigms: []string{"functional"}, Typing: "static", Website: "https://elm-lang.org"},
	"Shell":       {Paradigms: []string{"scripting"}, Typing: "dynamic", Website: "https://www.gnu.org/software/bash"},
	"PowerShell":  {Paradigms: []string{"scripting", "object-oriented"}, Typing: "dynamic", Website: "https://learn.microsoft.com/powershell"},
	"MATLAB":      {Paradigms: []string{"array", "imperative"}, Typing: "dynamic", Website: "https://www.mathworks.com/products/matlab.html"},
	"Fortran":     {Paradigms: []string{"imperative", "array"}, Typing: "static", Website: "https://fortran-lang.org"},
	"COBOL":       {Paradigms: []string{"procedural"}, Typing: "static", Website: ""},
	"Assembly":    {Paradigms: []string{"imperative"}, Typing: "", Website: ""},
}
