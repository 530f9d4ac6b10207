package tree

import "sort"

// sortedID is the constraint shared by VertexID and EdgeID lists.
type sortedID interface {
	~uint32
}

// searchSorted returns the insertion index of x in the ascending list s.
func searchSorted[T sortedID](s []T, x T) int {
	return sort.Search(len(s), func(i int) bool { return s[i] >= x })
}

// containsSorted reports whether x is in the ascending list s.
func containsSorted[T sortedID](s []T, x T) bool {
	i := searchSorted(s, x)
	return i < len(s) && s[i] == x
}

// insertSorted inserts x keeping s strictly ascending. Duplicates are ignored.
func insertSorted[T sortedID](s []T, x T) []T {
	i := searchSorted(s, x)
	if i < len(s) && s[i] == x {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x
	return s
}

// removeSorted deletes x from s if present.
func removeSorted[T sortedID](s []T, x T) []T {
	i := searchSorted(s, x)
	if i == len(s) || s[i] != x {
		return s
	}
	return append(s[:i], s[i+1:]...)
}

func cloneIDs[T sortedID](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
