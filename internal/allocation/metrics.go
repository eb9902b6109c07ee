package allocation

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var runCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "allocation_runs_total",
		Help: "How many fixed cost allocations were requested, partitioned by category and result.",
	},
	[]string{"cost_type", "result"},
)

var allocatedAmount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "allocation_allocated_amount_total",
		Help: "The sum of all fixed costs booked on contracts by allocations, partitioned by category.",
	},
	[]string{"cost_type"},
)

// Collectors returns the Prometheus collectors of the allocation engine.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{runCount, allocatedAmount}
}

func recordRun(category string, result Result, err error) {
	runCount.WithLabelValues(category, resultLabel(err)).Inc()

	if err == nil {
		allocatedAmount.WithLabelValues(category).Add(result.TotalFixedCost.InexactFloat64())
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoFixedCostRecords):
		return "no_fixed_costs"
	case errors.Is(err, ErrNoEligibleContracts):
		return "no_eligible_contracts"
	case errors.Is(err, ErrZeroWeight):
		return "zero_weight"
	case errors.Is(err, ErrAllocationExists):
		return "already_allocated"
	default:
		return "error"
	}
}
