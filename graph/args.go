package graph

// Inverse normalization: GraphQL argument maps to typed service inputs.
// Absence and explicit null both count as "field not supplied" for
// partial updates.

func stringArg(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func optStringArg(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optBoolArg(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func optIntArg(m map[string]interface{}, key string) *int {
	switch v := m[key].(type) {
	case int:
		return &v
	case float64:
		i := int(v)
		return &i
	}
	return nil
}

func optFloatArg(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func stringSliceArg(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func optStringSliceArg(m map[string]interface{}, key string) *[]string {
	if _, ok := m[key].([]interface{}); !ok {
		return nil
	}
	out := stringSliceArg(m, key)
	return &out
}

func mapArg(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func optMapArg(m map[string]interface{}, key string) *map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return &v
	}
	return nil
}
