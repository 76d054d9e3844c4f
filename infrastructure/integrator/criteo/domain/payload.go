package domain

// ValueKind tags the variants a deserialized remote payload node can take.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindSequence
	KindObject
)

// Value is one node of a deserialized remote payload. The Criteo API returns
// arbitrarily nested object graphs; rather than introspecting them with
// reflection they are decoded into this tagged variant and flattened with
// Flatten when a plain record is needed.
type Value struct {
	Kind   ValueKind
	Scalar string
	Seq    []Value
	Obj    map[string]Value
}

// Scalar wraps a primitive payload value.
func ScalarValue(s string) Value {
	return Value{Kind: KindScalar, Scalar: s}
}

// SequenceValue wraps a list payload value.
func SequenceValue(items ...Value) Value {
	return Value{Kind: KindSequence, Seq: items}
}

// ObjectValue wraps an object payload value.
func ObjectValue(fields map[string]Value) Value {
	return Value{Kind: KindObject, Obj: fields}
}

// Flatten reduces the node to plain Go data: scalars become strings,
// sequences become []interface{} and objects become map[string]interface{},
// recursively. No field is dropped.
func (v Value) Flatten() interface{} {
	switch v.Kind {
	case KindSequence:
		out := make([]interface{}, 0, len(v.Seq))
		for _, item := range v.Seq {
			out = append(out, item.Flatten())
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.Obj))
		for key, field := range v.Obj {
			out[key] = field.Flatten()
		}
		return out
	default:
		return v.Scalar
	}
}

// FlattenObject is Flatten for nodes known to be objects. Non-object nodes
// yield a map with the value under "value" so callers always get a record.
func (v Value) FlattenObject() map[string]interface{} {
	if v.Kind == KindObject {
		return v.Flatten().(map[string]interface{})
	}
	return map[string]interface{}{"value": v.Flatten()}
}
