package container

import (
	"fmt"

	"github.com/google/uuid"
)

// Attach inserts child into parent's children at the given index. The
// index is clamped to the valid range. Fails if the child is already
// attached somewhere.
func Attach(child, parent Container, index int) error {
	if child.Parent() != nil {
		return fmt.Errorf("container %s is already attached", child.ID())
	}

	pb := parent.base()
	if index < 0 {
		index = 0
	}
	if index > len(pb.children) {
		index = len(pb.children)
	}

	pb.children = append(pb.children, nil)
	copy(pb.children[index+1:], pb.children[index:])
	pb.children[index] = child
	child.base().parent = parent

	rebalanceTiling(parent)
	return nil
}

// Detach removes the container from its parent. Fails with ErrNoParent if
// it is not attached.
func Detach(child Container) error {
	parent := child.Parent()
	if parent == nil {
		return ErrNoParent
	}

	pb := parent.base()
	for i, c := range pb.children {
		if c.ID() == child.ID() {
			pb.children = append(pb.children[:i], pb.children[i+1:]...)
			break
		}
	}
	if pb.lastFocused == child.ID() {
		pb.lastFocused = uuid.Nil
	}
	child.base().parent = nil

	rebalanceTiling(parent)
	return nil
}

// MoveWithinTree re-parents a container to targetParent at the given
// index. When moving within the same parent toward a later position, the
// index is adjusted for the container's own removal.
func MoveWithinTree(child, targetParent Container, index int) error {
	parent := child.Parent()
	if parent != nil {
		if parent.ID() == targetParent.ID() && Index(child) < index {
			index--
		}
		if err := Detach(child); err != nil {
			return err
		}
	}
	return Attach(child, targetParent, index)
}

// WrapInSplitContainer inserts the split at the first target's position
// under parent and moves the targets inside it, preserving their order.
// All targets must be children of parent.
func WrapInSplitContainer(split *SplitContainer, parent Container, targets []Container) error {
	if len(targets) == 0 {
		return fmt.Errorf("no containers to wrap")
	}
	for _, target := range targets {
		if target.Parent() == nil || target.Parent().ID() != parent.ID() {
			return fmt.Errorf("container %s is not a child of the wrap parent", target.ID())
		}
	}

	splitIndex := Index(targets[0])
	if err := Attach(split, parent, splitIndex); err != nil {
		return err
	}

	for i, target := range targets {
		if err := Detach(target); err != nil {
			return err
		}
		if err := Attach(target, split, i); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceWithTiling swaps a non-tiling window for a tiling window with the
// same identity and native handle, at the same position in the tree.
func ReplaceWithTiling(window *NonTilingWindow) (*TilingWindow, error) {
	parent := window.Parent()
	if parent == nil {
		return nil, ErrNoParent
	}

	// The active drag does not carry over; the drag ended with the
	// state change.
	tiling := &TilingWindow{
		baseContainer: baseContainer{id: window.id},
		native:        window.native,
		sizeFraction:  1.0,
	}

	pb := parent.base()
	for i, c := range pb.children {
		if c.ID() == window.ID() {
			pb.children[i] = tiling
			break
		}
	}
	tiling.parent = parent
	window.parent = nil

	rebalanceTiling(parent)
	return tiling, nil
}

// rebalanceTiling resets the tiling children of parent to equal size
// fractions, matching the membership change that just happened.
func rebalanceTiling(parent Container) {
	tiling := TilingChildren(parent)
	if len(tiling) == 0 {
		return
	}
	fraction := 1.0 / float64(len(tiling))
	for _, tc := range tiling {
		tc.SetSizeFraction(fraction)
	}
}

// Validate walks the tree from root and reports the first violated
// structural invariant: the root must be parentless, every child's parent
// link must point back to its actual parent, and no container ID may
// appear twice.
func Validate(root Container) error {
	if root.Parent() != nil {
		return fmt.Errorf("root %s has a parent", root.ID())
	}

	seen := make(map[uuid.UUID]bool)
	var walk func(Container) error
	walk = func(node Container) error {
		if seen[node.ID()] {
			return fmt.Errorf("container %s appears more than once", node.ID())
		}
		seen[node.ID()] = true

		for _, child := range node.Children() {
			if child.Parent() == nil || child.Parent().ID() != node.ID() {
				return fmt.Errorf("child %s has inconsistent parent link", child.ID())
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}
