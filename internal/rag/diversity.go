package rag

// SelectDiverse greedily picks up to k results from a relevance-sorted
// candidate list, penalizing category repetition. This is a simplified
// maximal-marginal-relevance selection: for each remaining candidate the
// selection score is
//
//	lambda*relevance - (1-lambda)*penalty*(selected items sharing its category)
//
// Ties break toward the first candidate found in pool order. The output
// never exceeds k items, never exceeds the input, and never contains an item
// that was not in the input.
func SelectDiverse(results []SearchResult, k int, lambda, penalty float64) []SearchResult {
	if k <= 0 || len(results) == 0 {
		return nil
	}

	pool := make([]SearchResult, len(results))
	copy(pool, results)

	selected := make([]SearchResult, 0, k)
	for len(selected) < k && len(pool) > 0 {
		bestIdx := 0
		bestScore := selectionScore(pool[0], selected, lambda, penalty)

		for i := 1; i < len(pool); i++ {
			if score := selectionScore(pool[i], selected, lambda, penalty); score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		selected = append(selected, pool[bestIdx])
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	return selected
}

func selectionScore(candidate SearchResult, selected []SearchResult, lambda, penalty float64) float64 {
	duplicates := 0
	for _, s := range selected {
		if s.Category == candidate.Category {
			duplicates++
		}
	}
	return lambda*candidate.Relevance - (1-lambda)*penalty*float64(duplicates)
}
