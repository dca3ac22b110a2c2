package trace

import (
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/internal/pkg/codec"
	"gopkg.in/yaml.v3"
	"io"
	"strconv"
)

// YAMLTracer writes one YAML document per event. The first encoding error is
// kept and reported by Close.
type YAMLTracer struct {
	enc *yaml.Encoder
	err error
}

func YAML(w io.Writer) *YAMLTracer {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLTracer{enc: enc}
}

func (t *YAMLTracer) Step(n int, expr ast.Expression) {
	t.emit(KindStep, n, expr, nil)
}

func (t *YAMLTracer) Done(n int, expr ast.Expression) {
	t.emit(KindDone, n, expr, nil)
}

func (t *YAMLTracer) Failed(n int, err error) {
	t.emit(KindFailed, n, nil, err)
}

func (t *YAMLTracer) Close() error {
	if err := t.enc.Close(); err != nil && t.err == nil {
		t.err = err
	}
	return t.err
}

func (t *YAMLTracer) emit(kind Kind, n int, expr ast.Expression, failure error) {
	if t.err != nil {
		return
	}
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}
	add("event", &yaml.Node{Kind: yaml.ScalarNode, Value: kind.String()})
	add("n", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)})
	if expr != nil {
		node, err := codec.Encode(expr)
		if err != nil {
			t.err = err
			return
		}
		add("expr", node)
		add("text", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: expr.String()})
	}
	if failure != nil {
		add("error", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: failure.Error()})
	}
	t.err = t.enc.Encode(doc)
}
