/*
Command monads is a small playground for the Maybe and Writer monads.

With flag -laws it checks the functor and monad laws for all monads of this
module and prints a table of results. Otherwise it starts a REPL: every line
entered is run through a Maybe pipeline (parse, then 100/x) and a logging
Writer pipeline.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'monads'
func tracer() tracing.Trace {
	return tracing.Select("monads")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.monads":    "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	laws := flag.Bool("laws", false, "Check the monad laws and exit")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	default:
		tracer().SetTraceLevel(tracing.LevelError)
	}

	if *laws {
		if !printLaws() {
			os.Exit(2)
		}
		return
	}

	// set up REPL
	repl, err := readline.New("monads > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	pterm.Info.Println("Enter an integer; quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		} else if err != nil {
			tracer().Errorf("%v", err)
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		printEvaluation(line)
	}
	pterm.Info.Println("Good bye!")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " Info  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printEvaluation(input string) {
	m := reciprocal(input)
	if m.IsNothing() {
		pterm.Error.Printf("maybe:  %v\n", m)
	} else {
		pterm.Printf("maybe:  %v\n", m)
	}
	w := explain(input)
	pterm.Printf("writer: %v\n", w.Value())
	for _, line := range w.Log() {
		pterm.Println("        " + line)
	}
}
