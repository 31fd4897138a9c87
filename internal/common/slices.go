package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// DedupLastBy returns a copy of s with duplicate keys removed, keeping the
// last occurrence of each key at its last position.
func DedupLastBy[S ~[]E, E any, K comparable](s S, key func(E) K) S {
	seen := make(map[K]struct{}, len(s))
	out := make(S, 0, len(s))

	for i := len(s) - 1; i >= 0; i-- {
		k := key(s[i])
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, s[i])
	}

	// Restore forward order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// StablePartition returns a copy of s with every element satisfying pred
// placed before every element that does not, preserving relative order
// within each group.
func StablePartition[S ~[]E, E any](s S, pred func(E) bool) S {
	out := make(S, 0, len(s))

	for _, e := range s {
		if pred(e) {
			out = append(out, e)
		}
	}

	for _, e := range s {
		if !pred(e) {
			out = append(out, e)
		}
	}

	return out
}
