package trace

import (
	"fmt"
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/pkg/logger"
)

type LogTracer struct {
	log *logger.LogWriter
}

// Log routes iterations to log as trace entries and failures as errors.
func Log(log *logger.LogWriter) *LogTracer {
	return &LogTracer{log: log}
}

func (t *LogTracer) Step(n int, expr ast.Expression) {
	t.log.Trace(fmt.Sprintf("step %d: %s", n, expr))
}

func (t *LogTracer) Done(n int, expr ast.Expression) {
	t.log.Info(fmt.Sprintf("done after %d steps: %s", n, expr))
}

func (t *LogTracer) Failed(n int, err error) {
	t.log.Err(fmt.Errorf("step %d: %w", n, err))
}
