// Package config holds GILL's CLI-visible knobs and the module search-path
// table, grounded on go-mix's main/main.go package-var block (MODE,
// VERSION, AUTHOR, LICENCE, PROMPT, BANNER, LINE as plain package vars).
package config

var (
	// Version is the interpreter's reported version string.
	Version = "0.1.0"

	// Author contains the contact information shown by --version.
	Author = "gill-lang"

	// License names the project's license.
	License = "MIT"

	// Prompt is the REPL's line prompt.
	Prompt = "gill> "

	// Banner is the ASCII art shown when the REPL starts.
	Banner = `
   ▄████  ██▓ ██▓     ██▓
  ██▒ ▀█▒▓██▒▓██▒    ▓██▒
 ▒██░▄▄▄░▒██▒▒██░    ▒██░
 ░▓█  ██▓░██░▒██░    ▒██░
 ░▒▓███▀▒░██░░██████▒░██████▒
  ░▒   ▒ ░▓  ░ ▒░▓  ░░ ▒░▓  ░
   ░   ░  ▒ ░░ ░ ▒  ░░ ░ ▒  ░
 ░ ░   ░  ▒ ░  ░ ░     ░ ░
       ░  ░      ░  ░    ░  ░
`

	// Line is the separator used between REPL banner and prompt.
	Line = "----------------------------------------------------------------"
)
