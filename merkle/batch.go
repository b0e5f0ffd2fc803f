package merkle

// Root computes the merkle root of the given leaves. The empty list yields
// the zero digest and a single leaf is its own root. Levels of odd length are
// padded by duplicating their last node, so a lone node pairs with itself.
// The input is never mutated.
func Root[D Digest[D]](leaves []D) D {
	if len(leaves) == 0 {
		var zero D
		return zero
	}

	level := make([]D, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}

		next := make([]D, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, combine(level[i], level[i+1]))
		}

		level = next
	}

	return level[0]
}
