package compare

import (
	"reflect"
	"sort"
)

// MaxDepth bounds the recursion of Canonicalize. Subtrees nested deeper
// are returned unchanged.
const MaxDepth = 512

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is the canonical form of a string-keyed map: its members sorted
// by key.
type Object []Member

// Canonicalize returns an order-normalized copy of v for equality checks.
// Maps become Objects sorted by key; slices keep their element order.
// Other values, including []byte, are returned as is.
func Canonicalize(v any) any {
	return canonicalize(v, 0)
}

func canonicalize(v any, depth int) any {
	if depth >= MaxDepth {
		return v
	}
	switch v := v.(type) {
	case map[string]any:
		obj := make(Object, 0, len(v))
		for k, e := range v {
			obj = append(obj, Member{Key: k, Value: canonicalize(e, depth+1)})
		}
		return sortObject(obj)
	case map[string]string:
		obj := make(Object, 0, len(v))
		for k, e := range v {
			obj = append(obj, Member{Key: k, Value: e})
		}
		return sortObject(obj)
	case Object:
		obj := make(Object, 0, len(v))
		for _, m := range v {
			obj = append(obj, Member{Key: m.Key, Value: canonicalize(m.Value, depth+1)})
		}
		return sortObject(obj)
	case []any:
		arr := make([]any, len(v))
		for i, e := range v {
			arr[i] = canonicalize(e, depth+1)
		}
		return arr
	case []string:
		arr := make([]any, len(v))
		for i, e := range v {
			arr[i] = e
		}
		return arr
	case []map[string]any:
		arr := make([]any, len(v))
		for i, e := range v {
			arr[i] = canonicalize(e, depth+1)
		}
		return arr
	default:
		return v
	}
}

func sortObject(obj Object) Object {
	sort.SliceStable(obj, func(i, j int) bool {
		return obj[i].Key < obj[j].Key
	})
	return obj
}

// Equal reports whether a and b are equal once canonicalized.
func Equal(a, b any) bool {
	return reflect.DeepEqual(Canonicalize(a), Canonicalize(b))
}
