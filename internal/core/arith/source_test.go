package arith

// scriptedSource replays values in order, wrapping around, and counts draws.
// Each value is reduced modulo n so scripts stay in range.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[(s.calls-1)%len(s.values)]
	return v % n
}
