// Package evaluator runs the whole search suite concurrently on one grid and
// picks the best successful result under a configurable priority order.
//
// Every algorithm receives its own clone of the input grid, so runs share no
// mutable state. All algorithms are submitted at once to a pool sized to the
// number of algorithms; Evaluate waits for every one of them. An algorithm
// that panics is replaced by search.Failed(name), so a batch always yields
// exactly one Result per registered algorithm.
//
// Ranking:
//
//	score(r) = (value(r, p1), value(r, p2), value(r, p3))
//
// where (p1, p2, p3) is a permutation of {cost, nodes, time}. The best
// result is the successful one with the lexicographically smallest score;
// equal scores keep the first result in slice order. Re-ranking a finished
// batch (Outcome.Rerank, SelectBest) never re-runs an algorithm.
//
// Observability: slog for batch and per-algorithm logs, an OpenTelemetry
// span per batch with a child span per algorithm, and optional Prometheus
// metrics registered on an injected prometheus.Registerer.
package evaluator
