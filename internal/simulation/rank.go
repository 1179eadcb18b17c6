package simulation

import (
	"cmp"
	"slices"
)

// Rank returns the 1-based ascending ranks of values. Tied values share the
// average of the ranks they span.
func Rank(values []float64) []float64 {
	ranks := make([]float64, len(values))
	rankInto(ranks, make([]int, len(values)), values)
	return ranks
}

func rankInto(dst []float64, order []int, values []float64) {
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	for i := 0; i < len(order); {
		j := i
		for j+1 < len(order) && values[order[j+1]] == values[order[i]] {
			j++
		}
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			dst[order[k]] = avg
		}
		i = j + 1
	}
}
