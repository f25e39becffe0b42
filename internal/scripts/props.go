// Package scripts holds the gameplay components attached to level objects.
// Each script registers a factory, serializer and property applier with the
// engine so it can be built from config props and retuned on hot reload.
package scripts

func floatProp(props map[string]any, key string, fallback float32) float32 {
	if v, ok := props[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func intProp(props map[string]any, key string, fallback int) int {
	if v, ok := props[key].(float64); ok {
		return int(v)
	}
	return fallback
}

// asFloat converts an applied value; hot reload delivers float64.
func asFloat(value any) (float32, bool) {
	switch v := value.(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	}
	return 0, false
}
