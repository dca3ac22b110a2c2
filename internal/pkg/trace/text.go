package trace

import (
	"github.com/chrisdone/redex/internal/pkg/ast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
)

type TextTracer struct {
	w io.Writer
	p *message.Printer
}

// Text writes one human readable line per event.
func Text(w io.Writer) *TextTracer {
	return &TextTracer{w: w, p: message.NewPrinter(language.English)}
}

func (t *TextTracer) Step(n int, expr ast.Expression) {
	_, _ = t.p.Fprintf(t.w, "step %d: %s\n", n, expr)
}

func (t *TextTracer) Done(n int, expr ast.Expression) {
	_, _ = t.p.Fprintf(t.w, "done after %d steps: %s\n", n, expr)
}

func (t *TextTracer) Failed(n int, err error) {
	_, _ = t.p.Fprintf(t.w, "error at step %d: %v\n", n, err)
}
