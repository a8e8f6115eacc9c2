package engine

import "war/metrics"

// Runner plays a session to the end.
type Runner interface {
	// Run plays turns till a mission is fulfilled or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, err error)
}
