// Command gill is GILL's file-execution entry point (spec.md §6: "program
// entry: file path argument, reads and executes the named source file").
// Grounded on akashmaji946/go-mix's main/main.go, trimmed to the file-mode
// path only — GILL's REPL lives in package repl and is launched when no
// file argument is given, mirroring go-mix's default-to-REPL behavior,
// but the TCP "server" mode go-mix exposes has no GILL feature to attach
// to (spec.md §1 Non-goals: single-process, no network) and is dropped.
package main

import (
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"

	"github.com/gill-lang/gill/config"
	"github.com/gill-lang/gill/interp"
	"github.com/gill-lang/gill/lexer"
	"github.com/gill-lang/gill/parser"
	"github.com/gill-lang/gill/repl"
	"github.com/gill-lang/gill/stdlib"
	"github.com/gill-lang/gill/value"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			runFile(os.Args[1])
			return
		}
	}

	repler := repl.NewRepl(config.Banner, config.Version, config.Author, config.Line, config.License, config.Prompt)
	repler.Start(os.Stdin, os.Stdout)
}

// stdoutIsTTY reports whether stdout is a real terminal, matching
// go-mix's go-isatty-gated color decision in main/main.go.
func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func showHelp() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	cyan.Println("GILL - a small interpreted scripting language")
	cyan.Println("")
	cyan.Println("USAGE:")
	yellow.Println("  gill                    Start interactive REPL mode")
	yellow.Println("  gill <path-to-file>     Execute a GILL source file")
	yellow.Println("  gill --help             Display this help message")
	yellow.Println("  gill --version          Display version information")
}

func showVersion() {
	cyan := color.New(color.FgCyan)
	cyan.Printf("GILL version %s\n", config.Version)
	cyan.Printf("License: %s\n", config.License)
	cyan.Printf("Author : %s\n", config.Author)
}

// runFile reads, lexes, parses, and evaluates a GILL source file, exiting
// 1 on any lex/parse/runtime error and 0 on a clean run (spec.md §6 exit
// codes).
func runFile(fileName string) {
	red := color.New(color.FgRed)
	if !stdoutIsTTY() {
		color.NoColor = true
	} else {
		color.Output = colorable.NewColorableStdout()
	}

	source, err := os.ReadFile(fileName)
	if err != nil {
		red.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	toks, lexErr := lexer.New(string(source)).Tokenize()
	if lexErr != nil {
		red.Fprintf(os.Stderr, "%s\n", lexErr.Error())
		os.Exit(1)
	}

	program, parseErr := parser.Parse(toks)
	if parseErr != nil {
		red.Fprintf(os.Stderr, "%s\n", parseErr.Error())
		os.Exit(1)
	}

	it := interp.New(stdlib.NewLoader())
	it.SetWriter(os.Stdout)
	result := it.Run(program)

	if value.IsError(result) {
		red.Fprintf(os.Stderr, "%s\n", result.String())
		os.Exit(1)
	}
	os.Exit(0)
}
