package camelapp

import (
	"fmt"
	"strconv"
	"time"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Field is the result of reading one optional path out of a loosely-typed
// object. Present is false when any segment of the path is missing or holds
// a value of the wrong type.
type Field[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Present: true}
}

// None returns an absent Field.
func None[T any]() Field[T] {
	return Field[T]{}
}

// OrElse returns the held value, or fallback when the field is absent.
func (f Field[T]) OrElse(fallback T) T {
	if !f.Present {
		return fallback
	}
	return f.Value
}

// lookup walks fields without copying. Callers must treat the result as
// read-only.
func lookup(obj map[string]interface{}, fields ...string) Field[interface{}] {
	if obj == nil {
		return None[interface{}]()
	}
	v, found, err := unstructured.NestedFieldNoCopy(obj, fields...)
	if err != nil || !found || v == nil {
		return None[interface{}]()
	}
	return Some(v)
}

func stringAt(obj map[string]interface{}, fields ...string) Field[string] {
	v := lookup(obj, fields...)
	if !v.Present {
		return None[string]()
	}
	s, ok := v.Value.(string)
	if !ok {
		return None[string]()
	}
	return Some(s)
}

// nonEmptyStringAt treats "" the same as a missing field.
func nonEmptyStringAt(obj map[string]interface{}, fields ...string) Field[string] {
	s := stringAt(obj, fields...)
	if !s.Present || s.Value == "" {
		return None[string]()
	}
	return s
}

// scalarStringAt renders strings and JSON numbers as text.
func scalarStringAt(obj map[string]interface{}, fields ...string) Field[string] {
	v := lookup(obj, fields...)
	if !v.Present {
		return None[string]()
	}
	switch t := v.Value.(type) {
	case string:
		return Some(t)
	case int64:
		return Some(strconv.FormatInt(t, 10))
	case int:
		return Some(strconv.Itoa(t))
	case float64:
		return Some(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		return Some(strconv.FormatBool(t))
	default:
		return Some(fmt.Sprint(t))
	}
}

func int64At(obj map[string]interface{}, fields ...string) Field[int64] {
	v := lookup(obj, fields...)
	if !v.Present {
		return None[int64]()
	}
	switch t := v.Value.(type) {
	case int64:
		return Some(t)
	case int:
		return Some(int64(t))
	case int32:
		return Some(int64(t))
	case float64:
		return Some(int64(t))
	default:
		return None[int64]()
	}
}

func boolAt(obj map[string]interface{}, fields ...string) Field[bool] {
	v := lookup(obj, fields...)
	if !v.Present {
		return None[bool]()
	}
	b, ok := v.Value.(bool)
	if !ok {
		return None[bool]()
	}
	return Some(b)
}

func mapAt(obj map[string]interface{}, fields ...string) Field[map[string]interface{}] {
	v := lookup(obj, fields...)
	if !v.Present {
		return None[map[string]interface{}]()
	}
	m, ok := v.Value.(map[string]interface{})
	if !ok {
		return None[map[string]interface{}]()
	}
	return Some(m)
}

func sliceAt(obj map[string]interface{}, fields ...string) Field[[]interface{}] {
	v := lookup(obj, fields...)
	if !v.Present {
		return None[[]interface{}]()
	}
	s, ok := v.Value.([]interface{})
	if !ok {
		return None[[]interface{}]()
	}
	return Some(s)
}

// timeAt parses an RFC3339 timestamp. Unparseable values are absent.
func timeAt(obj map[string]interface{}, fields ...string) Field[time.Time] {
	s := nonEmptyStringAt(obj, fields...)
	if !s.Present {
		return None[time.Time]()
	}
	t, err := time.Parse(time.RFC3339, s.Value)
	if err != nil {
		return None[time.Time]()
	}
	return Some(t)
}
