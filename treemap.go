package treemap

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

type Node[K any, V any] struct {
	Key   K
	Value V
	Left  *Node[K, V]
	Right *Node[K, V]
}

type treeMapStruct[K any, V any] struct {
	compare       Compare[K]
	dumpCallbacks DumpCallbacks[K, V]
	root          *Node[K, V]
	size          int
}

// NewTreeMap returns an empty TreeMap ordered by compare. dumpCallbacks may be nil.
func NewTreeMap[K any, V any](compare Compare[K], dumpCallbacks DumpCallbacks[K, V]) (tree TreeMap[K, V]) {
	tree = &treeMapStruct[K, V]{compare: compare, dumpCallbacks: dumpCallbacks, root: nil, size: 0}
	return
}

// PutAllFromMap applies Put() for every element of m. Later puts win, so for
// a Go map the result does not depend on its (random) iteration order.
func PutAllFromMap[K comparable, V any](tree TreeMap[K, V], m map[K]V) (err error) {
	for key, value := range m {
		_, _, err = tree.Put(key, value)
		if nil != err {
			return
		}
	}

	err = nil
	return
}

func (tree *treeMapStruct[K, V]) Put(key K, value V) (previous V, replaced bool, err error) {
	if isNil(key) {
		err = errors.Wrap(ErrInvalidArgument, "Put() called with nil key")
		return
	}

	if nil == tree.root {
		tree.root = &Node[K, V]{Key: key, Value: value}
		tree.size = 1
		err = nil
		return
	}

	node := tree.root

	for {
		compareResult, compareErr := tree.compare(key, node.Key)
		if nil != compareErr {
			err = compareErr
			return
		}

		switch {
		case compareResult < 0:
			if nil == node.Left {
				node.Left = &Node[K, V]{Key: key, Value: value}
				tree.size++
				err = nil
				return
			}
			node = node.Left
		case compareResult > 0:
			if nil == node.Right {
				node.Right = &Node[K, V]{Key: key, Value: value}
				tree.size++
				err = nil
				return
			}
			node = node.Right
		default: // compareResult == 0
			previous = node.Value
			node.Value = value
			replaced = true
			err = nil
			return
		}
	}
}

func (tree *treeMapStruct[K, V]) Get(key K) (value V, ok bool, err error) {
	if isNil(key) {
		err = nil
		return
	}

	node, err := tree.findNode(key)
	if (nil != err) || (nil == node) {
		return
	}

	value = node.Value
	ok = true

	return
}

func (tree *treeMapStruct[K, V]) ContainsKey(key K) (found bool, err error) {
	if isNil(key) {
		err = errors.Wrap(ErrInvalidArgument, "ContainsKey() called with nil key")
		return
	}

	node, err := tree.findNode(key)
	if nil != err {
		return
	}

	found = (nil != node)

	return
}

func (tree *treeMapStruct[K, V]) ContainsValue(value V) (found bool) {
	found = false

	tree.walkPreOrder(func(node *Node[K, V]) (keepGoing bool) {
		if valuesEqual(value, node.Value) {
			found = true
			return false
		}
		return true
	})

	return
}

func (tree *treeMapStruct[K, V]) Keys() (keys []K) {
	capacity := tree.size
	if 0 > capacity {
		capacity = 0 // SetTree() does not check size
	}

	keys = make([]K, 0, capacity)

	tree.walkInOrder(func(node *Node[K, V]) (keepGoing bool) {
		keys = append(keys, node.Key)
		return true
	})

	return
}

func (tree *treeMapStruct[K, V]) Values() (values []V) {
	valueSet := newValueSet[V]()

	tree.walkPreOrder(func(node *Node[K, V]) (keepGoing bool) {
		valueSet.add(node.Value)
		return true
	})

	values = valueSet.values

	return
}

func (tree *treeMapStruct[K, V]) Range(visit func(key K, value V) (keepGoing bool)) {
	tree.walkInOrder(func(node *Node[K, V]) (keepGoing bool) {
		return visit(node.Key, node.Value)
	})
}

func (tree *treeMapStruct[K, V]) Len() (numberOfItems int) {
	numberOfItems = tree.size
	return
}

func (tree *treeMapStruct[K, V]) IsEmpty() (empty bool) {
	empty = (0 == tree.size)
	return
}

func (tree *treeMapStruct[K, V]) Clear() {
	tree.root = nil
	tree.size = 0
}

func (tree *treeMapStruct[K, V]) PutAll(other Entries[K, V]) (err error) {
	if nil == other {
		err = errors.Wrap(ErrInvalidArgument, "PutAll() called with nil Entries")
		return
	}

	err = nil

	other.Range(func(key K, value V) (keepGoing bool) {
		_, _, err = tree.Put(key, value)
		return (nil == err)
	})

	return
}

// Height is computed level by level rather than recursively so that a
// degenerate tree does not cost a stack frame per node.
func (tree *treeMapStruct[K, V]) Height() (height int) {
	height = 0

	if nil == tree.root {
		return
	}

	level := []*Node[K, V]{tree.root}

	for 0 < len(level) {
		height++
		nextLevel := make([]*Node[K, V], 0, 2*len(level))
		for _, node := range level {
			if nil != node.Left {
				nextLevel = append(nextLevel, node.Left)
			}
			if nil != node.Right {
				nextLevel = append(nextLevel, node.Right)
			}
		}
		level = nextLevel
	}

	return
}

type shapeFrameStruct[K any, V any] struct {
	node  *Node[K, V]
	depth int
	side  ChildSide
}

func (tree *treeMapStruct[K, V]) WalkShape(visit func(depth int, side ChildSide, key K, value V) (keepGoing bool)) {
	if nil == tree.root {
		return
	}

	stack := []shapeFrameStruct[K, V]{{node: tree.root, depth: 0, side: RootSide}}

	for 0 < len(stack) {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(frame.depth, frame.side, frame.node.Key, frame.node.Value) {
			return
		}

		if nil != frame.node.Right {
			stack = append(stack, shapeFrameStruct[K, V]{node: frame.node.Right, depth: frame.depth + 1, side: RightSide})
		}
		if nil != frame.node.Left {
			stack = append(stack, shapeFrameStruct[K, V]{node: frame.node.Left, depth: frame.depth + 1, side: LeftSide})
		}
	}
}

func (tree *treeMapStruct[K, V]) EntrySet() (entries EntryList[K, V], err error) {
	err = errors.Wrap(ErrUnsupportedOperation, "EntrySet()")
	return
}

func (tree *treeMapStruct[K, V]) Remove(key K) (previous V, ok bool, err error) {
	err = errors.Wrap(ErrUnsupportedOperation, "Remove()")
	return
}

func (tree *treeMapStruct[K, V]) MakeNode(key K, value V) (node *Node[K, V]) {
	node = &Node[K, V]{Key: key, Value: value, Left: nil, Right: nil}
	return
}

func (tree *treeMapStruct[K, V]) SetTree(root *Node[K, V], size int) {
	tree.root = root
	tree.size = size
}

func (tree *treeMapStruct[K, V]) findNode(key K) (node *Node[K, V], err error) {
	node = tree.root

	for nil != node {
		compareResult, compareErr := tree.compare(key, node.Key)
		if nil != compareErr {
			node = nil
			err = compareErr
			return
		}

		switch {
		case compareResult < 0:
			node = node.Left
		case compareResult > 0:
			node = node.Right
		default: // compareResult == 0
			err = nil
			return
		}
	}

	err = nil
	return
}

// walkInOrder visits nodes in ascending key order until visit returns false.
func (tree *treeMapStruct[K, V]) walkInOrder(visit func(node *Node[K, V]) (keepGoing bool)) {
	stack := make([]*Node[K, V], 0)
	node := tree.root

	for (nil != node) || (0 < len(stack)) {
		for nil != node {
			stack = append(stack, node)
			node = node.Left
		}

		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(node) {
			return
		}

		node = node.Right
	}
}

// walkPreOrder visits every reachable node (node, then left, then right)
// until visit returns false.
func (tree *treeMapStruct[K, V]) walkPreOrder(visit func(node *Node[K, V]) (keepGoing bool)) {
	if nil == tree.root {
		return
	}

	stack := []*Node[K, V]{tree.root}

	for 0 < len(stack) {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(node) {
			return
		}

		if nil != node.Right {
			stack = append(stack, node.Right)
		}
		if nil != node.Left {
			stack = append(stack, node.Left)
		}
	}
}

// isNil reports whether x holds no value at all: a nil interface, or a nil
// pointer, map, slice, channel or func.
func isNil(x any) bool {
	if nil == x {
		return true
	}

	v := reflect.ValueOf(x)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
