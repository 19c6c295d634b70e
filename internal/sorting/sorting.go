// Package sorting provides in-place comparison sorts over ordered element
// types. None of the strategies are stable.
package sorting

import (
	"cmp"
	"fmt"
	"strings"
)

// Algorithm selects a sorting strategy.
type Algorithm int

const (
	Selection Algorithm = iota
	Quick
	Bubble
)

func (a Algorithm) String() string {
	switch a {
	case Selection:
		return "selection"
	case Quick:
		return "quick"
	case Bubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// Code returns the single-letter selector accepted on the command line.
func (a Algorithm) Code() string {
	switch a {
	case Selection:
		return "S"
	case Quick:
		return "Q"
	case Bubble:
		return "B"
	default:
		return "?"
	}
}

// ParseAlgorithm maps a selector (S, Q or B in either case) to an Algorithm.
func ParseAlgorithm(code string) (Algorithm, error) {
	switch strings.ToLower(code) {
	case "s":
		return Selection, nil
	case "q":
		return Quick, nil
	case "b":
		return Bubble, nil
	default:
		return 0, fmt.Errorf("sorting: unknown algorithm %q", code)
	}
}

// Strategy sorts s in ascending order, in place.
type Strategy[T cmp.Ordered] func(s []T)

// For returns the strategy implementing alg.
func For[T cmp.Ordered](alg Algorithm) (Strategy[T], error) {
	switch alg {
	case Selection:
		return SelectionSort[T], nil
	case Quick:
		return QuickSort[T], nil
	case Bubble:
		return BubbleSort[T], nil
	default:
		return nil, fmt.Errorf("sorting: unknown algorithm %d", int(alg))
	}
}

// SelectionSort moves the leftmost minimum of each suffix into place.
func SelectionSort[T cmp.Ordered](s []T) {
	for i := 0; i < len(s)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}
		s[i], s[minIdx] = s[minIdx], s[i]
	}
}

// QuickSort sorts s with Lomuto partitioning around the last element.
func QuickSort[T cmp.Ordered](s []T) {
	quickSort(s, 0, len(s)-1)
}

func quickSort[T cmp.Ordered](s []T, begin, end int) {
	if begin >= end {
		return
	}
	idx := partition(s, begin, end)
	quickSort(s, begin, idx-1)
	quickSort(s, idx+1, end)
}

// partition places every element <= s[end] left of the returned index and
// the pivot itself at that index.
func partition[T cmp.Ordered](s []T, begin, end int) int {
	pivot := s[end]
	i := begin - 1
	for j := begin; j < end; j++ {
		if s[j] <= pivot {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[end] = s[end], s[i+1]
	return i + 1
}

// BubbleSort repeats adjacent-swap passes until a pass swaps nothing.
func BubbleSort[T cmp.Ordered](s []T) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for j := 1; j < n; j++ {
			if s[j] < s[j-1] {
				s[j], s[j-1] = s[j-1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Reverse reverses s in place by swapping symmetric pairs from both ends.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
