package main

import (
	"bytes"
	redex "github.com/chrisdone/redex/pkg"
	"strings"
	"testing"
)

func TestSessionExec(t *testing.T) {
	var out bytes.Buffer
	s := &session{options: redex.Options{Format: redex.FormatText}, out: &out}

	if s.exec(":max 5") || s.options.MaxSteps != 5 {
		t.Fatalf("max steps = %d", s.options.MaxSteps)
	}
	s.exec("identity")
	if !strings.Contains(out.String(), "done after 2 steps: 123") {
		t.Errorf("identity trace:\n%s", out.String())
	}

	out.Reset()
	s.exec(":example omega")
	if !strings.Contains(out.String(), "error at step 5: step limit reached after 5 steps") {
		t.Errorf("omega trace:\n%s", out.String())
	}

	out.Reset()
	s.exec(":format xml")
	if s.options.Format != redex.FormatText || !strings.Contains(out.String(), "unknown trace format") {
		t.Errorf("format = %s, output %q", s.options.Format, out.String())
	}

	out.Reset()
	s.exec(":max -1")
	if s.options.MaxSteps != 5 || !strings.Contains(out.String(), "non-negative step count") {
		t.Errorf("max steps = %d, output %q", s.options.MaxSteps, out.String())
	}

	out.Reset()
	s.exec(":bogus")
	if !strings.Contains(out.String(), "unknown command `:bogus`") {
		t.Errorf("output %q", out.String())
	}

	if !s.exec(":quit") {
		t.Error(":quit should end the session")
	}
}

func TestComplete(t *testing.T) {
	got := complete(":example y")
	if len(got) != 1 || got[0] != ":example y-identity" {
		t.Errorf("complete() = %v", got)
	}
}

func TestSessionOpenTerms(t *testing.T) {
	var out bytes.Buffer
	s := &session{out: &out}

	s.exec(":open on")
	if !s.options.OpenTerms {
		t.Fatal(":open on should enable open terms")
	}
	s.exec(":open yes")
	if !s.options.OpenTerms || !strings.Contains(out.String(), "expected `on` or `off`, got `yes`") {
		t.Errorf("open terms = %v, output %q", s.options.OpenTerms, out.String())
	}
	s.exec(":open off")
	if s.options.OpenTerms {
		t.Error(":open off should disable open terms")
	}
}

func TestSessionSteps(t *testing.T) {
	var out bytes.Buffer
	s := &session{options: redex.Options{Format: redex.FormatText}, out: &out}

	s.exec(":steps")
	if !strings.Contains(out.String(), "error: nothing evaluated yet") {
		t.Errorf("output %q", out.String())
	}

	s.exec("identity")
	out.Reset()
	s.exec(":steps")
	want := "step 1: (\\v1 -> v1) 123\nstep 2: 123\ninfo: done after 2 steps: 123\n"
	if out.String() != want {
		t.Errorf("steps output %q, want %q", out.String(), want)
	}
}
