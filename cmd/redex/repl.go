package main

import (
	"errors"
	"fmt"
	"github.com/chrisdone/redex/internal/pkg/examples"
	"github.com/chrisdone/redex/internal/pkg/processors"
	"github.com/chrisdone/redex/internal/pkg/trace"
	redex "github.com/chrisdone/redex/pkg"
	"github.com/chrisdone/redex/pkg/logger"
	"github.com/peterh/liner"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	historyFile = ".redex_history"
	prompt      = "redex> "
	helpText    = `commands:
  :example NAME    evaluate a built-in example (NAME alone works too)
  :load PATH       evaluate a YAML expression document
  :list            list built-in examples
  :format FORMAT   switch trace format (text, yaml, log)
  :max N           stop after N steps, 0 for no limit
  :open on|off     let free variables stand for themselves
  :steps           show the trace of the last evaluation
  :quit            exit`
)

type session struct {
	options redex.Options
	out     io.Writer
	// last holds the events of the most recent evaluation.
	last *trace.Record
}

func repl(options redex.Options) int {
	fmt.Printf("redex %s\nType :help for commands, Ctrl+D exits.\n", processors.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(complete)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := &session{options: options, out: os.Stdout}
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := s.exec(line); quit {
			return 0
		}
	}
}

// exec runs one REPL line and reports whether the session should end.
func (s *session) exec(line string) bool {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	log := &logger.LogWriter{}
	defer log.Flush(s.out)

	switch command {
	case ":quit", ":q":
		return true
	case ":help":
		log.Info(helpText)
	case ":list":
		log.Info(strings.Join(examples.Names(), " "))
	case ":example":
		redex.EvaluateExample(arg, s.out, s.recording(), log)
	case ":load":
		redex.EvaluateFile(arg, s.out, s.recording(), log)
	case ":steps":
		if s.last == nil {
			log.Err(errors.New("nothing evaluated yet"))
		} else {
			s.last.Replay(trace.Log(log))
		}
	case ":format":
		f, err := redex.ParseFormat(arg)
		if !log.Err(err) {
			s.options.Format = f
		}
	case ":max":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			log.Err(fmt.Errorf("expected a non-negative step count, got `%s`", arg))
		} else {
			s.options.MaxSteps = n
		}
	case ":open":
		switch arg {
		case "on":
			s.options.OpenTerms = true
		case "off":
			s.options.OpenTerms = false
		default:
			log.Err(fmt.Errorf("expected `on` or `off`, got `%s`", arg))
		}
	default:
		if strings.HasPrefix(command, ":") {
			log.Err(fmt.Errorf("unknown command `%s`, type :help", command))
		} else {
			redex.EvaluateExample(line, s.out, s.recording(), log)
		}
	}
	return false
}

// recording starts a fresh record for the next evaluation.
func (s *session) recording() redex.Options {
	s.last = &trace.Record{}
	options := s.options
	options.Record = s.last
	return options
}

func complete(line string) []string {
	var out []string
	for _, name := range examples.Names() {
		for _, prefix := range []string{"", ":example "} {
			if candidate := prefix + name; strings.HasPrefix(candidate, line) {
				out = append(out, candidate)
			}
		}
	}
	return out
}
