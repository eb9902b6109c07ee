// Package allocation distributes monthly fixed costs across contracts.
//
// A contract's share of the fixed costs is proportional to its weight,
// the total contract amount multiplied with the completion fraction.
// Contracts without a positive completion rate receive nothing.
package allocation

import (
	"errors"

	"github.com/contract-ledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	ErrNoFixedCostRecords  = errors.New("there are no fixed costs to allocate for this month and cost type")
	ErrNoEligibleContracts = errors.New("there are no contracts with a completion rate above 0")
	ErrZeroWeight          = errors.New("the combined weight of all contracts with a completion rate above 0 is 0")
	ErrAllocationExists    = errors.New("the fixed costs for this month and cost type have already been allocated")
)

// centPlaces is the precision of booked amounts.
const centPlaces = 2

// ContractAllocation is the share of the fixed costs for one contract.
type ContractAllocation struct {
	ContractID     uuid.UUID       `json:"contract_id" example:"0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"` // ID of the contract
	ContractName   string          `json:"contract_name" example:"Riverside bridge renovation"`        // Project name of the contract
	Amount         decimal.Decimal `json:"amount" example:"100000" swaggertype:"number"`               // Total amount of the contract
	CompletionRate decimal.Decimal `json:"completion_rate" example:"50" swaggertype:"number"`          // Completion rate in percent
	Weight         decimal.Decimal `json:"weight" example:"50000" swaggertype:"number"`                // Amount × completion rate / 100
	AllocatedCost  decimal.Decimal `json:"allocated_cost" example:"7500" swaggertype:"number"`         // Share of the fixed costs
}

// Calculation is the result of distributing fixed costs.
type Calculation struct {
	TotalFixedCost decimal.Decimal      `json:"total_fixed_cost" example:"15000" swaggertype:"number"` // Sum of all fixed costs for the month and cost type
	TotalWeight    decimal.Decimal      `json:"total_weight" example:"100000" swaggertype:"number"`    // Sum of all contract weights
	AllocationRate decimal.Decimal      `json:"allocation_rate" example:"0.15" swaggertype:"number"`   // Fixed costs per unit of weight
	Results        []ContractAllocation `json:"results"`                                               // Allocation per contract
}

// Calculate distributes the sum of the fixed costs across the contracts.
//
// Allocated costs are rounded with the largest remainder method: every share
// is rounded down to cents, then the cents left over go one at a time to the
// contracts with the largest cut-off remainder, earlier contracts first on
// ties. Shares are never negative, never more than a cent away from the
// exact share, and always add up to the total fixed cost.
func Calculate(fixedCosts []models.FixedCost, contracts []models.Contract) (Calculation, error) {
	totalFixedCost := decimal.Zero
	for _, f := range fixedCosts {
		totalFixedCost = totalFixedCost.Add(f.Amount)
	}

	if len(fixedCosts) == 0 || totalFixedCost.IsZero() {
		return Calculation{}, ErrNoFixedCostRecords
	}

	results := make([]ContractAllocation, 0, len(contracts))
	totalWeight := decimal.Zero
	for _, c := range contracts {
		if !c.Completion().IsPositive() {
			continue
		}

		weight := c.Weight()
		totalWeight = totalWeight.Add(weight)

		results = append(results, ContractAllocation{
			ContractID:     c.ID,
			ContractName:   c.ProjectName,
			Amount:         c.TotalAmount,
			CompletionRate: c.Completion(),
			Weight:         weight,
		})
	}

	if len(results) == 0 {
		return Calculation{}, ErrNoEligibleContracts
	}

	if totalWeight.IsZero() {
		return Calculation{}, ErrZeroWeight
	}

	rate := totalFixedCost.Div(totalWeight)

	distribute(totalFixedCost, totalWeight, results)

	return Calculation{
		TotalFixedCost: totalFixedCost,
		TotalWeight:    totalWeight,
		AllocationRate: rate,
		Results:        results,
	}, nil
}

// distribute sets the allocated cost of every result using largest
// remainder rounding to cents.
func distribute(total, totalWeight decimal.Decimal, results []ContractAllocation) {
	cent := decimal.New(1, -centPlaces)
	remainders := make([]decimal.Decimal, len(results))
	allocated := decimal.Zero

	for i := range results {
		// total × weight / totalWeight equals rate × weight, but
		// does not carry the rounding error of the rate
		exact := total.Mul(results[i].Weight).Div(totalWeight)
		floor := exact.RoundFloor(centPlaces)

		results[i].AllocatedCost = floor
		remainders[i] = exact.Sub(floor)
		allocated = allocated.Add(floor)
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return remainders[b].Cmp(remainders[a])
	})

	// Every share lost less than a cent, so there are fewer leftover
	// cents than contracts
	leftover := total.Sub(allocated)
	for _, i := range order {
		if !leftover.IsPositive() {
			return
		}

		step := cent
		if leftover.LessThan(cent) {
			// Totals with sub-cent precision
			step = leftover
		}

		results[i].AllocatedCost = results[i].AllocatedCost.Add(step)
		leftover = leftover.Sub(step)
	}
}
