package treemap

import "github.com/cockroachdb/errors"

type validateFrameStruct[K any, V any] struct {
	node          *Node[K, V]
	hasLowerBound bool
	lowerBound    K // node.Key must compare greater (when hasLowerBound)
	hasUpperBound bool
	upperBound    K // node.Key must compare less (when hasUpperBound)
}

// Validate checks that every node is reachable exactly once, that the BST
// ordering holds at every node, and that the size counter matches the
// number of reachable nodes.
func (tree *treeMapStruct[K, V]) Validate() (err error) {
	var (
		compareResult int
		frame         validateFrameStruct[K, V]
		nodesSeen     map[*Node[K, V]]struct{}
		stack         []validateFrameStruct[K, V]
	)

	nodesSeen = make(map[*Node[K, V]]struct{})

	if nil != tree.root {
		stack = []validateFrameStruct[K, V]{{node: tree.root}}
	}

	for 0 < len(stack) {
		frame = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := nodesSeen[frame.node]; ok {
			err = errors.Wrapf(ErrInvariantViolation, "node with key %v reachable more than once", frame.node.Key)
			return
		}
		nodesSeen[frame.node] = struct{}{}

		if isNil(frame.node.Key) {
			err = errors.Wrap(ErrInvariantViolation, "node with nil key")
			return
		}

		if frame.hasLowerBound {
			compareResult, err = tree.compare(frame.node.Key, frame.lowerBound)
			if nil != err {
				return
			}
			if 0 >= compareResult {
				err = errors.Wrapf(ErrInvariantViolation, "key %v not greater than ancestor key %v", frame.node.Key, frame.lowerBound)
				return
			}
		}

		if frame.hasUpperBound {
			compareResult, err = tree.compare(frame.node.Key, frame.upperBound)
			if nil != err {
				return
			}
			if 0 <= compareResult {
				err = errors.Wrapf(ErrInvariantViolation, "key %v not less than ancestor key %v", frame.node.Key, frame.upperBound)
				return
			}
		}

		if nil != frame.node.Left {
			stack = append(stack, validateFrameStruct[K, V]{
				node:          frame.node.Left,
				hasLowerBound: frame.hasLowerBound,
				lowerBound:    frame.lowerBound,
				hasUpperBound: true,
				upperBound:    frame.node.Key,
			})
		}

		if nil != frame.node.Right {
			stack = append(stack, validateFrameStruct[K, V]{
				node:          frame.node.Right,
				hasLowerBound: true,
				lowerBound:    frame.node.Key,
				hasUpperBound: frame.hasUpperBound,
				upperBound:    frame.upperBound,
			})
		}
	}

	if len(nodesSeen) != tree.size {
		err = errors.Wrapf(ErrInvariantViolation, "size == %v but %v nodes reachable", tree.size, len(nodesSeen))
		return
	}

	err = nil
	return
}
