package codec

import (
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/internal/pkg/common"
	"gopkg.in/yaml.v3"
	"strconv"
)

// Marshal renders e as a YAML document.
func Marshal(e ast.Expression) ([]byte, error) {
	node, err := Encode(e)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// Encode converts e to a YAML node tree in the layout Decode reads.
func Encode(e ast.Expression) (*yaml.Node, error) {
	switch x := e.(type) {
	case ast.Var:
		return variant(keyVar, nameNode(x.Name)), nil
	case ast.Constructor:
		return variant(keyCon, strNode(string(x.Name))), nil
	case ast.Const:
		c, ok := x.Value.(ast.CInt)
		if !ok {
			return nil, common.NewCompilerError("unsupported constant")
		}
		return variant(keyInt, intNode(c.Value)), nil
	case ast.Apply:
		fn, err := Encode(x.Func)
		if err != nil {
			return nil, err
		}
		arg, err := Encode(x.Arg)
		if err != nil {
			return nil, err
		}
		return variant(keyApply, fields(field{keyFunc, fn}, field{keyArg, arg})), nil
	case ast.Lambda:
		body, err := Encode(x.Body)
		if err != nil {
			return nil, err
		}
		return variant(keyLambda, fields(field{keyParam, nameNode(x.Param)}, field{keyBody, body})), nil
	case ast.Select:
		condition, err := Encode(x.Condition)
		if err != nil {
			return nil, err
		}
		cases := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, c := range x.Cases {
			body, err := Encode(c.Expression)
			if err != nil {
				return nil, err
			}
			cases.Content = append(cases.Content, fields(field{keyPattern, EncodePattern(c.Pattern)}, field{keyBody, body}))
		}
		return variant(keySelect, fields(field{keyCondition, condition}, field{keyCases, cases})), nil
	}
	return nil, common.NewCompilerError("impossible case")
}

func EncodePattern(p ast.Pattern) *yaml.Node {
	switch x := p.(type) {
	case ast.PNamed:
		return variant(keyNamed, nameNode(x.Name))
	case ast.PDataOption:
		values := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, v := range x.Values {
			values.Content = append(values.Content, EncodePattern(v))
		}
		return variant(keyData, fields(field{keyName, strNode(string(x.Name))}, field{keyValues, values}))
	default:
		return variant(keyAny, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle})
	}
}

func variant(key string, value *yaml.Node) *yaml.Node {
	return fields(field{key, value})
}

type field struct {
	key   string
	value *yaml.Node
}

func fields(fs ...field) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range fs {
		node.Content = append(node.Content, strNode(f.key), f.value)
	}
	return node
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intNode(v int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}
}

func nameNode(n ast.Name) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(uint64(n), 10)}
}
