package quiz

// ComputeScore counts submitted questions whose final answer is correct.
// It is always a full recomputation over all submitted questions, never an
// incremental counter, so re-grading after a correction stays consistent.
func ComputeScore(s *Session) int {
	score := 0
	for index := range s.submitted {
		if !s.submitted[index] {
			continue
		}
		record := s.items[index]
		if s.policy.IsCorrect(s.Selected(index), record) {
			score++
		}
	}
	return score
}
