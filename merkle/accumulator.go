package merkle

// Accumulator computes the same roots as Root, one leaf at a time, without
// keeping the leaves. It stores at most one pending sibling per tree level,
// so its state is O(log n) in the number of leaves appended.
//
// An Accumulator is not safe for concurrent use; callers sharing one across
// goroutines must serialize Append externally.
type Accumulator[D Digest[D]] struct {
	slots []D
	root  D
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator[D Digest[D]]() *Accumulator[D] {
	return &Accumulator[D]{}
}

// Load restores an accumulator from a previously saved slot vector. The
// current root is reset to the zero digest; a caller that needs root
// continuity across the save point must keep the root alongside the slots.
func Load[D Digest[D]](slots []D) *Accumulator[D] {
	a := &Accumulator[D]{slots: make([]D, len(slots))}
	copy(a.slots, slots)
	return a
}

// Append feeds one more leaf and returns the updated root, equal to
// Root over every leaf appended so far in order.
//
// The walk up the levels mirrors a binary-counter increment. While commit is
// true the walk follows the real insertion path and may mutate slots: storing
// into an empty slot is the "no carry" case and ends the committed path,
// consuming a stored sibling is the "carry" case and keeps it going. Once
// commit is false the remaining levels are a read-only projection that merely
// completes the partial tree to produce the current root.
func (a *Accumulator[D]) Append(leaf D) D {
	var zero D

	value := leaf
	commit := true

	for level := 0; ; level++ {
		if len(a.slots) <= level {
			// A new level appears here only while the structure has not
			// taken shape yet (all slots empty); afterwards growth happens
			// exclusively through the carry path below.
			if a.blank() {
				a.slots = append(a.slots, value)
			}
			break
		}

		if a.slots[level] == zero {
			if commit {
				a.slots[level] = value
				commit = false
			}
			// Pair the value with itself, matching Root's duplicate padding
			// for a node without a sibling.
			value = combine(value, value)
			continue
		}

		// Stored sibling is the left operand: it arrived first.
		pair := combine(a.slots[level], value)
		if commit {
			a.slots[level] = zero
		}
		value = pair
	}

	a.root = value
	return value
}

// Digest returns the root produced by the most recent Append, or the zero
// digest if nothing has been appended (or the accumulator was just loaded).
func (a *Accumulator[D]) Digest() D {
	return a.root
}

// Slots returns a copy of the slot vector for external persistence. Index is
// the tree level; entries may be the zero digest.
func (a *Accumulator[D]) Slots() []D {
	slots := make([]D, len(a.slots))
	copy(slots, a.slots)
	return slots
}

// Size returns the number of levels currently tracked.
func (a *Accumulator[D]) Size() int {
	return len(a.slots)
}

func (a *Accumulator[D]) blank() bool {
	var zero D
	for _, slot := range a.slots {
		if slot != zero {
			return false
		}
	}
	return true
}
