package order

// Scoring weights. Higher urgency and complexity raise priority; higher cost
// lowers it.
const (
	urgencyWeight    = 0.4
	complexityWeight = 0.3
	costWeight       = 0.3
)

// Score computes the priority score 0.4·urgency + 0.3·complexity + 0.3·(10−cost).
// It performs no validation: callers are responsible for keeping all inputs
// within [1, 10] (the entry form does). Output is then within [0.7, 9.7].
func Score(urgency, complexity, cost int) float64 {
	return urgencyWeight*float64(urgency) +
		complexityWeight*float64(complexity) +
		costWeight*float64(10-cost)
}
