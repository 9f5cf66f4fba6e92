package graph

import (
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// jsonScalar passes free-form structured values (parsedData) through
// unchanged in both directions.
var jsonScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "JSON",
	Description: "Arbitrary JSON value.",
	Serialize: func(value interface{}) interface{} {
		return value
	},
	ParseValue: func(value interface{}) interface{} {
		return value
	},
	ParseLiteral: parseJSONLiteral,
})

func parseJSONLiteral(valueAST ast.Value) interface{} {
	switch v := valueAST.(type) {
	case *ast.StringValue:
		return v.Value
	case *ast.BooleanValue:
		return v.Value
	case *ast.IntValue:
		if n, err := strconv.Atoi(v.Value); err == nil {
			return n
		}
		return nil
	case *ast.FloatValue:
		if f, err := strconv.ParseFloat(v.Value, 64); err == nil {
			return f
		}
		return nil
	case *ast.ObjectValue:
		out := make(map[string]interface{}, len(v.Fields))
		for _, field := range v.Fields {
			out[field.Name.Value] = parseJSONLiteral(field.Value)
		}
		return out
	case *ast.ListValue:
		out := make([]interface{}, 0, len(v.Values))
		for _, item := range v.Values {
			out = append(out, parseJSONLiteral(item))
		}
		return out
	default:
		return nil
	}
}
