package utils

// DedupeStable removes repeated entries, keeping the first occurrence of each.
func DedupeStable[T comparable](s []T) []T {
	if len(s) < 2 {
		return s
	}

	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
