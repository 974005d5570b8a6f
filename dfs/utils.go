// Package dfs provides sequence helpers used by cycle canonicalisation:
// lexicographic comparison and Booth's minimal-rotation algorithm.
package dfs

import "cmp"

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf[T comparable](s []T, val T) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Compare lexicographically compares two slices; a proper prefix sorts first.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(min(len(a), len(b))).
func Compare[T cmp.Ordered](a, b []T) int {
	for i := range min(len(a), len(b)) {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// MinimalRotation implements Booth's algorithm and returns the lexicographically
// minimal rotation of s as a new slice.
// Algorithm overview:
// 1. Work on the doubled sequence s+s of length 2n.
// 2. Maintain failure links f initialised to -1.
// 3. Track the candidate start k; for j in 1..2n-1 move k on every smaller mismatch.
// 4. The rotation starts at k.
// Time Complexity: O(n).
func MinimalRotation[T cmp.Ordered](s []T) []T {
	n := len(s)
	doubled := make([]T, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // here i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]T(nil), doubled[k:k+n]...)
}
