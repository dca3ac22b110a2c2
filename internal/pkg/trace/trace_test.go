package trace

import (
	"bytes"
	"errors"
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/internal/pkg/common"
	"github.com/chrisdone/redex/internal/pkg/examples"
	"github.com/chrisdone/redex/internal/pkg/processors"
	"github.com/chrisdone/redex/pkg/logger"
	"gopkg.in/yaml.v3"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	var buf bytes.Buffer
	e, _ := examples.Lookup("identity")
	if _, err := processors.Step(e, processors.WithTracer(Text(&buf))); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := "step 1: (\\v1 -> v1) 123\nstep 2: 123\ndone after 2 steps: 123\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTextGroupsLargeStepNumbers(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf).Step(1024, ast.NewInt(1))
	if buf.String() != "step 1,024: 1\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	tracer := YAML(&buf)
	e, _ := examples.Lookup("unbound")
	_, stepErr := processors.Step(e, processors.WithTracer(tracer))
	if stepErr == nil {
		t.Fatal("expected an error")
	}
	if err := tracer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dec := yaml.NewDecoder(&buf)
	var events []map[string]any
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			break
		}
		events = append(events, doc)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 documents, got %d: %v", len(events), events)
	}
	if events[0]["event"] != "step" || events[0]["text"] != `(\v1 -> v2) 1` {
		t.Errorf("first event = %v", events[0])
	}
	if events[1]["event"] != "error" || events[1]["error"] != stepErr.Error() {
		t.Errorf("second event = %v", events[1])
	}
}

func TestLogAndMulti(t *testing.T) {
	log := &logger.LogWriter{}
	rec := &Record{}
	e, _ := examples.Lookup("unbound")
	_, err := processors.Step(e, processors.WithTracer(Multi(Log(log), rec)))

	var missing common.MissingNameError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingNameError, got %v", err)
	}
	if !log.HasErrors() || !errors.As(log.Errors()[0], &missing) {
		t.Errorf("log errors = %v", log.Errors())
	}
	if len(rec.Events) != 2 || rec.Events[1].Kind != KindFailed {
		t.Errorf("recorded %v", rec.Events)
	}

	var buf bytes.Buffer
	log.Flush(&buf)
	if !strings.HasPrefix(buf.String(), "step 1: ") || !strings.Contains(buf.String(), "error: step 1: unbound variable v2") {
		t.Errorf("flushed %q", buf.String())
	}
}
