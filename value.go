package randcompat

import "reflect"

// equalValues compares wrapped generators the way the generator type itself
// would: through an Equal method if it has one, with == for comparable
// values and reflect.DeepEqual otherwise.
//
// When T is an interface type the Equal method is found on the dynamic
// value, since a concrete Equal(*PCG32) never matches Equal(T).
func equalValues[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == bv
	}
	if eq, ok := dynamicEqual(av, bv); ok {
		return eq
	}
	// Value.Comparable inspects interface fields' dynamic contents, so ==
	// cannot panic past this check.
	if reflect.ValueOf(av).Comparable() && reflect.ValueOf(bv).Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}

// dynamicEqual calls a's Equal method when it takes b's dynamic type and
// returns a bool. The second result reports whether such a method existed.
func dynamicEqual(a, b any) (bool, bool) {
	m := reflect.ValueOf(a).MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return false, false
	}
	arg := reflect.ValueOf(b)
	if !arg.Type().AssignableTo(mt.In(0)) {
		return false, false
	}
	return m.Call([]reflect.Value{arg})[0].Bool(), true
}

// cloneValue duplicates v through its Clone method, or copies it. A Clone
// method on the dynamic value is used as long as its result is a T.
func cloneValue[T any](v T) T {
	if c, ok := any(v).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	if any(v) == nil {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return v
	}
	m := rv.MethodByName("Clone")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return v
	}
	if c, ok := m.Call(nil)[0].Interface().(T); ok {
		return c
	}
	return v
}
