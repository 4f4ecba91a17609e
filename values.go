package treemap

import "reflect"

// valuesEqual matches a nil target only against a nil value. Anything else is
// compared with reflect.DeepEqual.
func valuesEqual[V any](value1 V, value2 V) bool {
	value1IsNil := isNil(value1)
	value2IsNil := isNil(value2)

	if value1IsNil || value2IsNil {
		return value1IsNil && value2IsNil
	}

	return reflect.DeepEqual(value1, value2)
}

// valueSetStruct collects distinct values (per valuesEqual) in the order first added.
type valueSetStruct[V any] struct {
	scalars map[any]struct{} // Key == value whose kind is bool, numeric or string
	others  []V              // Values needing a reflect.DeepEqual scan
	sawNil  bool
	values  []V
}

func newValueSet[V any]() (valueSet *valueSetStruct[V]) {
	valueSet = &valueSetStruct[V]{
		scalars: make(map[any]struct{}),
		others:  make([]V, 0),
		sawNil:  false,
		values:  make([]V, 0),
	}
	return
}

func (valueSet *valueSetStruct[V]) add(value V) {
	if isNil(value) {
		if !valueSet.sawNil {
			valueSet.sawNil = true
			valueSet.values = append(valueSet.values, value)
		}
		return
	}

	if isScalar(value) {
		if _, ok := valueSet.scalars[value]; !ok {
			valueSet.scalars[value] = struct{}{}
			valueSet.values = append(valueSet.values, value)
		}
		return
	}

	for _, other := range valueSet.others {
		if reflect.DeepEqual(value, other) {
			return
		}
	}

	valueSet.others = append(valueSet.others, value)
	valueSet.values = append(valueSet.values, value)
}

// isScalar reports whether == on x agrees with reflect.DeepEqual (NaN aside,
// which neither considers equal to itself).
func isScalar(x any) bool {
	switch reflect.ValueOf(x).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}
