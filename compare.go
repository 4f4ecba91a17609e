package treemap

import (
	"cmp"
	"reflect"

	"github.com/cockroachdb/errors"
)

func CompareOrdered[K cmp.Ordered](key1 K, key2 K) (result int, err error) {
	result = cmp.Compare(key1, key2)
	err = nil
	return
}

func CompareInt(key1 int, key2 int) (result int, err error) {
	return CompareOrdered(key1, key2)
}

func CompareUint64(key1 uint64, key2 uint64) (result int, err error) {
	return CompareOrdered(key1, key2)
}

func CompareString(key1 string, key2 string) (result int, err error) {
	return CompareOrdered(key1, key2)
}

// CompareKey orders keys held in an interface. Both keys must hold the same
// dynamic type, and that type must be int, uint64 or string.
func CompareKey(key1 any, key2 any) (result int, err error) {
	switch key1AsTyped := key1.(type) {
	case int:
		key2AsTyped, ok := key2.(int)
		if !ok {
			err = errors.Errorf("CompareKey() key1 is an int but key2 is a %v", reflect.TypeOf(key2))
			return
		}
		return CompareInt(key1AsTyped, key2AsTyped)
	case uint64:
		key2AsTyped, ok := key2.(uint64)
		if !ok {
			err = errors.Errorf("CompareKey() key1 is a uint64 but key2 is a %v", reflect.TypeOf(key2))
			return
		}
		return CompareUint64(key1AsTyped, key2AsTyped)
	case string:
		key2AsTyped, ok := key2.(string)
		if !ok {
			err = errors.Errorf("CompareKey() key1 is a string but key2 is a %v", reflect.TypeOf(key2))
			return
		}
		return CompareString(key1AsTyped, key2AsTyped)
	default:
		err = errors.Errorf("CompareKey() key1 of unsupported type %v", reflect.TypeOf(key1))
		return
	}
}
