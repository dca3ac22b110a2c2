// Package codec loads expression trees from YAML documents and writes them back.
//
// Every node is a mapping with exactly one key naming its variant:
//
//	apply:
//	  func: {lambda: {param: 1, body: {var: 1}}}
//	  arg: {int: 123}
//
// Patterns use the keys `data`, `named` and `any`.
package codec

import (
	"bytes"
	"errors"
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/internal/pkg/common"
	"gopkg.in/yaml.v3"
	"io"
)

type decoder struct {
	filePath string
}

// Decode reads a single expression document. Errors carry the document position.
func Decode(filePath string, data []byte) (ast.Expression, error) {
	d := decoder{filePath: filePath}
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, common.NewErrorAt(common.Location{FilePath: filePath}, "%v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, d.errorf(&doc, "empty document")
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		at := &extra
		if len(extra.Content) > 0 {
			at = extra.Content[0]
		}
		return nil, d.errorf(at, "expected a single document, found another one")
	} else if !errors.Is(err, io.EOF) {
		return nil, common.NewErrorAt(common.Location{FilePath: filePath}, "%v", err)
	}
	return d.expression(doc.Content[0])
}

func (d decoder) errorf(node *yaml.Node, format string, args ...any) error {
	loc := common.Location{FilePath: d.filePath, Line: node.Line, Column: node.Column}
	return common.NewErrorAt(loc, format, args...)
}

func (d decoder) expression(node *yaml.Node) (ast.Expression, error) {
	key, value, err := d.variant(node)
	if err != nil {
		return nil, err
	}
	switch key {
	case keyVar:
		name, err := d.name(value)
		if err != nil {
			return nil, err
		}
		return ast.NewVar(name), nil
	case keyCon:
		name, err := d.str(value)
		if err != nil {
			return nil, err
		}
		return ast.NewConstructor(ast.Identifier(name)), nil
	case keyInt:
		var v int64
		if value.Kind != yaml.ScalarNode || value.Decode(&v) != nil {
			return nil, d.errorf(value, "expected integer literal")
		}
		return ast.NewInt(v), nil
	case keyApply:
		fs, err := d.fields(value, keyFunc, keyArg)
		if err != nil {
			return nil, err
		}
		fn, err := d.expression(fs[keyFunc])
		if err != nil {
			return nil, err
		}
		arg, err := d.expression(fs[keyArg])
		if err != nil {
			return nil, err
		}
		return ast.NewApply(fn, arg), nil
	case keyLambda:
		fs, err := d.fields(value, keyParam, keyBody)
		if err != nil {
			return nil, err
		}
		param, err := d.name(fs[keyParam])
		if err != nil {
			return nil, err
		}
		body, err := d.expression(fs[keyBody])
		if err != nil {
			return nil, err
		}
		return ast.NewLambda(param, body), nil
	case keySelect:
		return d.selectExpression(value)
	}
	return nil, d.errorf(node, "unknown expression `%s`", key)
}

func (d decoder) selectExpression(node *yaml.Node) (ast.Expression, error) {
	fs, err := d.fields(node, keyCondition, keyCases)
	if err != nil {
		return nil, err
	}
	condition, err := d.expression(fs[keyCondition])
	if err != nil {
		return nil, err
	}
	list := fs[keyCases]
	if list.Kind != yaml.SequenceNode {
		return nil, d.errorf(list, "expected a list of cases")
	}
	var cases []ast.SelectCase
	for _, item := range list.Content {
		cs, err := d.fields(item, keyPattern, keyBody)
		if err != nil {
			return nil, err
		}
		pattern, err := d.pattern(cs[keyPattern])
		if err != nil {
			return nil, err
		}
		body, err := d.expression(cs[keyBody])
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.NewSelectCase(pattern, body))
	}
	return ast.NewSelect(condition, cases...), nil
}

func (d decoder) pattern(node *yaml.Node) (ast.Pattern, error) {
	key, value, err := d.variant(node)
	if err != nil {
		return nil, err
	}
	switch key {
	case keyAny:
		return ast.NewPAny(), nil
	case keyNamed:
		name, err := d.name(value)
		if err != nil {
			return nil, err
		}
		return ast.NewPNamed(name), nil
	case keyData:
		if value.Kind == yaml.ScalarNode {
			name, err := d.str(value)
			if err != nil {
				return nil, err
			}
			return ast.NewPDataOption(ast.Identifier(name)), nil
		}
		fs, err := d.optionalFields(value, []string{keyName}, []string{keyValues})
		if err != nil {
			return nil, err
		}
		name, err := d.str(fs[keyName])
		if err != nil {
			return nil, err
		}
		var values []ast.Pattern
		if list, ok := fs[keyValues]; ok {
			if list.Kind != yaml.SequenceNode {
				return nil, d.errorf(list, "expected a list of patterns")
			}
			for _, item := range list.Content {
				v, err := d.pattern(item)
				if err != nil {
					return nil, err
				}
				values = append(values, v)
			}
		}
		return ast.NewPDataOption(ast.Identifier(name), values...), nil
	}
	return nil, d.errorf(node, "unknown pattern `%s`", key)
}

// variant unpacks a single key mapping.
func (d decoder) variant(node *yaml.Node) (string, *yaml.Node, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return "", nil, d.errorf(node, "expected a mapping with exactly one key")
	}
	return node.Content[0].Value, node.Content[1], nil
}

func (d decoder) fields(node *yaml.Node, required ...string) (map[string]*yaml.Node, error) {
	return d.optionalFields(node, required, nil)
}

func (d decoder) optionalFields(node *yaml.Node, required []string, optional []string) (map[string]*yaml.Node, error) {
	if node.Kind != yaml.MappingNode {
		return nil, d.errorf(node, "expected a mapping with keys %v", required)
	}
	known := map[string]bool{}
	for _, k := range required {
		known[k] = true
	}
	for _, k := range optional {
		known[k] = true
	}
	result := map[string]*yaml.Node{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		if !known[k.Value] {
			return nil, d.errorf(k, "unexpected key `%s`", k.Value)
		}
		if _, dup := result[k.Value]; dup {
			return nil, d.errorf(k, "duplicate key `%s`", k.Value)
		}
		result[k.Value] = node.Content[i+1]
	}
	for _, k := range required {
		if _, ok := result[k]; !ok {
			return nil, d.errorf(node, "missing key `%s`", k)
		}
	}
	return result, nil
}

func (d decoder) name(node *yaml.Node) (ast.Name, error) {
	var v uint64
	if node.Kind != yaml.ScalarNode || node.Decode(&v) != nil {
		return 0, d.errorf(node, "expected variable name (unsigned integer)")
	}
	return ast.Name(v), nil
}

func (d decoder) str(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || node.Value == "" {
		return "", d.errorf(node, "expected constructor name")
	}
	return node.Value, nil
}
