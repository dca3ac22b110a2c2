package logger

import (
	"fmt"
	"io"
)

type level int

const (
	levelTrace level = iota
	levelInfo
	levelWarn
	levelErr
)

var prefixes = map[level]string{
	levelTrace: "",
	levelInfo:  "info: ",
	levelWarn:  "warning: ",
	levelErr:   "error: ",
}

type entry struct {
	level   level
	message string
}

// LogWriter collects diagnostics until Flush. The zero value is ready to use.
type LogWriter struct {
	entries []entry
	errors  []error
}

// Err records non-nil errors and reports whether any error has been recorded so far.
func (w *LogWriter) Err(errs ...error) bool {
	for _, err := range errs {
		if err == nil {
			continue
		}
		w.errors = append(w.errors, err)
		w.entries = append(w.entries, entry{level: levelErr, message: err.Error()})
	}
	return len(w.errors) > 0
}

func (w *LogWriter) Warn(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		w.entries = append(w.entries, entry{level: levelWarn, message: err.Error()})
	}
}

func (w *LogWriter) Info(msg string) {
	w.entries = append(w.entries, entry{level: levelInfo, message: msg})
}

func (w *LogWriter) Trace(msg string) {
	w.entries = append(w.entries, entry{level: levelTrace, message: msg})
}

func (w *LogWriter) HasErrors() bool {
	return len(w.errors) > 0
}

func (w *LogWriter) Errors() []error {
	return w.errors
}

// Flush writes every entry in the order it was recorded and resets the writer.
func (w *LogWriter) Flush(writer io.Writer) {
	for _, e := range w.entries {
		_, _ = fmt.Fprintf(writer, "%s%s\n", prefixes[e.level], e.message)
	}
	*w = LogWriter{}
}
