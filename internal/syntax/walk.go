package syntax

import "iter"

// Predicate selects nodes during a traversal.
type Predicate func(*Node) bool

// OfKind matches nodes of any of the given kinds.
func OfKind(kinds ...Kind) Predicate {
	return func(n *Node) bool {
		for _, k := range kinds {
			if n.Kind == k {
				return true
			}
		}
		return false
	}
}

// Descendants yields every node below root matching pred, depth-first in
// pre-order. root itself is never yielded.
func Descendants(root *Node, pred Predicate) iter.Seq[*Node] {
	return walk(root, pred, false)
}

// Members is like Descendants but does not enter nested class or struct
// declarations: a nested type is yielded if it matches, its contents are not.
func Members(root *Node, pred Predicate) iter.Seq[*Node] {
	return walk(root, pred, true)
}

func walk(root *Node, pred Predicate, stopAtTypes bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root == nil {
			return
		}

		var visit func(*Node) bool
		visit = func(parent *Node) bool {
			for _, child := range parent.Children {
				if pred(child) && !yield(child) {
					return false
				}
				if stopAtTypes && child.IsType() {
					continue
				}
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}
