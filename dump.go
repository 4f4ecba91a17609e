package treemap

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type dumpFrameStruct[K any, V any] struct {
	node     *Node[K, V]
	isRoot   bool
	isRight  bool
	indent   string
	expanded bool // children already pushed
}

func (tree *treeMapStruct[K, V]) Dump() (err error) {
	err = tree.DumpTo(os.Stdout)
	return
}

// DumpTo writes every node (with its children's keys) in pre-order followed
// by a sideways drawing of the tree (right subtree above, left subtree below).
func (tree *treeMapStruct[K, V]) DumpTo(w io.Writer) (err error) {
	err = tree.dumpInFlatForm(w)
	if nil != err {
		return
	}

	err = tree.dumpInTreeForm(w)

	return
}

func (tree *treeMapStruct[K, V]) dumpInFlatForm(w io.Writer) (err error) {
	err = nil

	tree.walkPreOrder(func(node *Node[K, V]) (keepGoing bool) {
		var (
			nodeKey      string
			nodeLeftKey  string
			nodeRightKey string
			nodeValue    string
		)

		nodeKey, err = tree.dumpKey(node.Key)
		if nil != err {
			return false
		}

		nodeLeftKey = "nil"
		if nil != node.Left {
			nodeLeftKey, err = tree.dumpKey(node.Left.Key)
			if nil != err {
				return false
			}
		}

		nodeRightKey = "nil"
		if nil != node.Right {
			nodeRightKey, err = tree.dumpKey(node.Right.Key)
			if nil != err {
				return false
			}
		}

		nodeValue, err = tree.dumpValue(node.Value)
		if nil != err {
			return false
		}

		_, err = fmt.Fprintf(w, "Node Key == %v Node.Left.Key == %v Node.Right.Key == %v Node.Value == %v\n", nodeKey, nodeLeftKey, nodeRightKey, nodeValue)

		return (nil == err)
	})

	return
}

func (tree *treeMapStruct[K, V]) dumpInTreeForm(w io.Writer) (err error) {
	var (
		frame           dumpFrameStruct[K, V]
		indentAppendage string
		keyAsString     string
		stack           []dumpFrameStruct[K, V]
	)

	if nil == tree.root {
		err = nil
		return
	}

	stack = []dumpFrameStruct[K, V]{{node: tree.root, isRoot: true}}

	for 0 < len(stack) {
		frame = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.expanded {
			keyAsString, err = tree.dumpKey(frame.node.Key)
			if nil != err {
				return
			}
			if frame.isRoot {
				_, err = fmt.Fprintln(w, keyAsString)
			} else if frame.isRight {
				_, err = fmt.Fprintln(w, frame.indent+" /-----", keyAsString)
			} else {
				_, err = fmt.Fprintln(w, frame.indent+" \\-----", keyAsString)
			}
			if nil != err {
				return
			}
			continue
		}

		// Pushed in reverse of the order they are printed: right, node, left

		if nil != frame.node.Left {
			switch {
			case frame.isRoot:
				indentAppendage = ""
			case frame.isRight:
				indentAppendage = " |      "
			default:
				indentAppendage = "        "
			}
			stack = append(stack, dumpFrameStruct[K, V]{
				node:    frame.node.Left,
				isRight: false,
				indent:  strings.Join([]string{frame.indent, indentAppendage}, ""),
			})
		}

		frame.expanded = true
		stack = append(stack, frame)

		if nil != frame.node.Right {
			switch {
			case frame.isRoot:
				indentAppendage = ""
			case frame.isRight:
				indentAppendage = "        "
			default:
				indentAppendage = " |      "
			}
			stack = append(stack, dumpFrameStruct[K, V]{
				node:    frame.node.Right,
				isRight: true,
				indent:  strings.Join([]string{frame.indent, indentAppendage}, ""),
			})
		}
	}

	err = nil
	return
}

func (tree *treeMapStruct[K, V]) dumpKey(key K) (keyAsString string, err error) {
	if nil == tree.dumpCallbacks {
		keyAsString = fmt.Sprintf("%v", key)
		err = nil
		return
	}

	keyAsString, err = tree.dumpCallbacks.DumpKey(key)

	return
}

func (tree *treeMapStruct[K, V]) dumpValue(value V) (valueAsString string, err error) {
	if nil == tree.dumpCallbacks {
		valueAsString = fmt.Sprintf("%v", value)
		err = nil
		return
	}

	valueAsString, err = tree.dumpCallbacks.DumpValue(value)

	return
}
