package descriptor

// Options is the open configuration mapping attached to a plugin activation.
// Values are, by convention, strings, numbers, booleans, []any sequences, or
// nested map[string]any mappings. The descriptor performs no schema
// validation on these values; each plugin validates its own options when the
// build framework loads it.
type Options map[string]any

// Clone returns a deep copy of the options mapping. Nested maps and slices
// are copied recursively so the result shares no mutable state with the
// receiver.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, nested := range val {
			out[k] = cloneValue(nested)
		}
		return out
	case Options:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, nested := range val {
			out[i] = cloneValue(nested)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		// Scalars (string, bool, ints, floats) are copied by value.
		return val
	}
}
