// Package repl implements the Read-Eval-Print Loop for GILL, grounded on
// akashmaji946/go-mix's repl/repl.go: same readline-backed loop, same
// banner/color conventions, rewired to GILL's lexer/parser/interp
// pipeline and the native-module Loader in package stdlib.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gill-lang/gill/interp"
	"github.com/gill-lang/gill/lexer"
	"github.com/gill-lang/gill/parser"
	"github.com/gill-lang/gill/stdlib"
	"github.com/gill-lang/gill/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive GILL session. Its interpreter persists across
// lines so `define`d names and imported modules from one line remain
// visible on the next, matching a normal REPL's accumulate-as-you-go
// behavior.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to GILL!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop. reader is accepted for interface symmetry
// with go-mix's Start signature but, like go-mix, readline itself owns
// stdin; only writer receives output.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New(stdlib.NewLoader())
	it.SetWriter(writer)
	it.Current = it.Global

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.execute(writer, line, it)
	}
}

// execute lexes, parses, and evaluates one line against the REPL's
// persistent interpreter state. Unlike file mode, an error here doesn't
// exit the loop.
func (r *Repl) execute(writer io.Writer, line string, it *interp.Interpreter) {
	toks, err := lexer.New(line).Tokenize()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	block, err := parser.Parse(toks)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	it.Current = it.Global
	result := it.Eval(block)
	it.Current = it.Global

	if value.IsError(result) {
		redColor.Fprintf(writer, "%s\n", result.String())
		return
	}
	if _, isNull := result.(*value.Null); !isNull {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
