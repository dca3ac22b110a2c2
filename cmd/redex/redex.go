package main

import (
	"flag"
	"fmt"
	"github.com/chrisdone/redex/internal/pkg/examples"
	"github.com/chrisdone/redex/internal/pkg/processors"
	redex "github.com/chrisdone/redex/pkg"
	"github.com/chrisdone/redex/pkg/logger"
	"os"
	"strings"
)

func main() {
	format := flag.String("format", string(redex.FormatText), "trace format (available: text, yaml, log)")
	maxSteps := flag.Int("max-steps", 0, "stop after this many steps (0 runs until a fixpoint)")
	example := flag.String("example", "", "evaluate a built-in example instead of files")
	openTerms := flag.Bool("open", false, "let free variables stand for themselves")
	runRepl := flag.Bool("repl", false, "start an interactive session")
	list := flag.Bool("list", false, "list built-in examples")
	showVersion := flag.Bool("version", false, "show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("redex version: %s\n", processors.Version)
		return
	}

	if *list {
		fmt.Println(strings.Join(examples.Names(), "\n"))
		return
	}

	log := &logger.LogWriter{}

	options := redex.Options{Format: redex.Format(*format), MaxSteps: *maxSteps, OpenTerms: *openTerms}
	if log.Err(options.Validate()) {
		log.Flush(os.Stderr)
		os.Exit(2)
	}

	if *runRepl {
		os.Exit(repl(options))
	}

	ok := true
	if *example != "" {
		_, ok = redex.EvaluateExample(*example, os.Stdout, options, log)
	} else if len(flag.Args()) == 0 {
		log.Err(fmt.Errorf("no input documents, run as `redex <expression.yaml>` or `redex -example %s`", examples.Names()[0]))
	} else {
		for _, path := range flag.Args() {
			if _, evaluated := redex.EvaluateFile(path, os.Stdout, options, log); !evaluated {
				ok = false
			}
		}
	}

	failed := !ok || log.HasErrors()
	log.Flush(os.Stdout)
	if failed {
		os.Exit(1)
	}
}
