// Package shuffle provides the unbiased permutation primitive shared by all games.
package shuffle

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of s.
// The input slice is not modified.
func Shuffle[T any](s []T) []T {
	return permute(rand.IntN, s)
}

// ShuffleWith is Shuffle with an explicit random source.
func ShuffleWith[T any](r *rand.Rand, s []T) []T {
	if r == nil {
		return Shuffle(s)
	}
	return permute(r.IntN, s)
}

// Pick returns a uniformly chosen element of s, or false if s is empty.
func Pick[T any](r *rand.Rand, s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	if r == nil {
		return s[rand.IntN(len(s))], true
	}
	return s[r.IntN(len(s))], true
}

// permute is Fisher-Yates: walk from the last index down to 1 and swap
// with a uniformly chosen index in [0, i].
func permute[T any](intn func(int) int, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
