package redex

import (
	"fmt"
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/internal/pkg/codec"
	"github.com/chrisdone/redex/internal/pkg/common"
	"github.com/chrisdone/redex/internal/pkg/examples"
	"github.com/chrisdone/redex/internal/pkg/processors"
	"github.com/chrisdone/redex/internal/pkg/trace"
	"github.com/chrisdone/redex/pkg/logger"
	"golang.org/x/exp/slices"
	"io"
	"os"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	// FormatLog routes the trace through the log instead of the output writer.
	FormatLog Format = "log"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML, FormatLog:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown trace format `%s` (available: text, yaml, log)", s)
}

// Options configure a single evaluation. The zero value traces as text and
// never stops a diverging term.
type Options struct {
	Format    Format
	MaxSteps  int
	OpenTerms bool
	// Record, when set, also receives every trace event.
	Record *trace.Record
}

func (o Options) Validate() error {
	if o.Format != "" {
		if _, err := ParseFormat(string(o.Format)); err != nil {
			return err
		}
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("expected a non-negative step count, got %d", o.MaxSteps)
	}
	return nil
}

// Evaluate steps expr to weak head normal form and writes the trace to out.
// A failed run is reported by the trace itself, ok is false then. Only
// problems outside the trace are recorded in log.
func Evaluate(expr ast.Expression, out io.Writer, options Options, log *logger.LogWriter) (outcome processors.Outcome, ok bool) {
	if err := options.Validate(); err != nil {
		log.Err(err)
		return processors.Outcome{}, false
	}

	var tracer trace.Tracer
	var yamlTracer *trace.YAMLTracer
	switch options.Format {
	case FormatYAML:
		yamlTracer = trace.YAML(out)
		tracer = yamlTracer
	case FormatLog:
		tracer = trace.Log(log)
	default:
		tracer = trace.Text(out)
	}
	if options.Record != nil {
		tracer = trace.Multi(tracer, options.Record)
	}

	stepperOptions := []processors.Option{
		processors.WithTracer(tracer),
		processors.WithMaxSteps(options.MaxSteps),
	}
	if options.OpenTerms {
		stepperOptions = append(stepperOptions, processors.WithOpenTerms())
		free := ast.FreeNames(expr).Slice()
		slices.Sort(free)
		for _, name := range free {
			log.Warn(fmt.Errorf("free variable %s stands for itself", name))
		}
	}

	outcome, err := processors.Step(expr, stepperOptions...)
	if yamlTracer != nil {
		log.Err(yamlTracer.Close())
	}
	return outcome, err == nil
}

// EvaluateFile loads a YAML expression document and evaluates it.
func EvaluateFile(path string, out io.Writer, options Options, log *logger.LogWriter) (processors.Outcome, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Err(common.NewSystemError(fmt.Errorf("failed to read `%s`: %w", path, err)))
		return processors.Outcome{}, false
	}
	expr, err := codec.Decode(path, data)
	if err != nil {
		log.Err(err)
		return processors.Outcome{}, false
	}
	return Evaluate(expr, out, options, log)
}

func EvaluateExample(name string, out io.Writer, options Options, log *logger.LogWriter) (processors.Outcome, bool) {
	expr, ok := examples.Lookup(name)
	if !ok {
		log.Err(fmt.Errorf("unknown example `%s` (available: %v)", name, examples.Names()))
		return processors.Outcome{}, false
	}
	return Evaluate(expr, out, options, log)
}
