package quiz

import "math/rand"

// sampleIndices выбирает k различных индексов из [0, n) в случайном порядке.
// Перемешивает все индексы алгоритмом Фишера-Йейтса и берет первые k.
func sampleIndices(r *rand.Rand, n, k int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices[:k]
}
