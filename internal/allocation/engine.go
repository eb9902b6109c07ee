package allocation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCategory is the fixed cost category allocated when none is given.
const DefaultCategory = "salary"

// CostTypePrefix prefixes the cost type of all costs created by an allocation.
const CostTypePrefix = "fixed-cost-allocation-"

// CostType returns the cost type of costs created by allocating the category.
func CostType(category string) string {
	return CostTypePrefix + category
}

// Result is the outcome of an allocation for one month and category.
type Result struct {
	Month    types.Month `json:"month" example:"2024-06" swaggertype:"string"` // The month the fixed costs were allocated for
	CostType string      `json:"cost_type" example:"salary"`                   // The category of fixed costs
	Calculation
}

// Engine allocates fixed costs to contracts.
//
// It holds no state between runs, all data is read from and written to
// the Store.
type Engine struct {
	store           Store
	defaultCategory string
	printer         *message.Printer
	separator       string
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithDefaultCategory sets the category used when none is specified.
func WithDefaultCategory(category string) Option {
	return func(e *Engine) {
		if c := strings.TrimSpace(category); c != "" {
			e.defaultCategory = c
		}
	}
}

// WithLanguage sets the language used to format amounts in cost descriptions.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) {
		e.printer = message.NewPrinter(tag)
		e.separator = decimalSeparator(e.printer)
	}
}

// NewEngine returns an Engine working on the store.
func NewEngine(store Store, options ...Option) *Engine {
	printer := message.NewPrinter(language.English)
	e := &Engine{
		store:           store,
		defaultCategory: DefaultCategory,
		printer:         printer,
		separator:       decimalSeparator(printer),
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// DefaultCategory returns the category allocated when none is specified.
func (e *Engine) DefaultCategory() string {
	return e.defaultCategory
}

// Preview calculates the allocation without booking any costs.
func (e *Engine) Preview(ctx context.Context, month types.Month, category string) (Result, error) {
	category = e.category(category)

	result, err := e.calculate(ctx, e.store, month, category)
	if err != nil {
		return Result{}, err
	}

	log.Debug().Str("month", month.String()).Str("category", category).Str("total", result.TotalFixedCost.String()).Msg("allocation preview")
	return result, nil
}

// Allocate distributes the fixed costs of the category for the month
// across all contracts with a positive completion rate and books one
// cost per contract.
//
// Reading the data and booking the costs happens in one transaction:
// either all costs are booked or none.
func (e *Engine) Allocate(ctx context.Context, month types.Month, category string) (Result, error) {
	category = e.category(category)
	costType := CostType(category)

	var result Result
	err := e.store.Transaction(ctx, func(tx Store) error {
		exists, err := tx.AllocationExists(ctx, month, costType)
		if err != nil {
			return err
		}

		if exists {
			return ErrAllocationExists
		}

		result, err = e.calculate(ctx, tx, month, category)
		if err != nil {
			return err
		}

		costs := make([]models.Cost, 0, len(result.Results))
		for _, r := range result.Results {
			costs = append(costs, models.Cost{
				ContractID:  r.ContractID,
				CostType:    costType,
				Amount:      r.AllocatedCost,
				CostDate:    month.FirstDay(),
				Description: e.description(month, category, result),
			})
		}

		return tx.CreateCosts(ctx, costs)
	})

	recordRun(category, result, err)
	if err != nil {
		if IsRejection(err) {
			log.Info().Str("month", month.String()).Str("category", category).Err(err).Msg("allocation rejected")
			return Result{}, err
		}
		return Result{}, fmt.Errorf("allocating %s fixed costs for %s failed: %w", category, month, err)
	}

	log.Info().
		Str("month", month.String()).
		Str("category", category).
		Str("total", result.TotalFixedCost.String()).
		Int("contracts", len(result.Results)).
		Msg("fixed costs allocated")

	return result, nil
}

func (e *Engine) calculate(ctx context.Context, store Store, month types.Month, category string) (Result, error) {
	fixedCosts, err := store.FixedCosts(ctx, month, category)
	if err != nil {
		return Result{}, err
	}

	// Without fixed costs, there is no need to load contracts
	if len(fixedCosts) == 0 {
		return Result{}, ErrNoFixedCostRecords
	}

	contracts, err := store.EligibleContracts(ctx)
	if err != nil {
		return Result{}, err
	}

	calculation, err := Calculate(fixedCosts, contracts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Month:       month,
		CostType:    category,
		Calculation: calculation,
	}, nil
}

func (e *Engine) category(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return e.defaultCategory
	}
	return category
}

func (e *Engine) description(month types.Month, category string, result Result) string {
	return e.printer.Sprintf("Share of %s fixed costs for %s (total %s)", category, month, e.formatAmount(result.TotalFixedCost))
}

// formatAmount formats the amount rounded to cents in the engine's language.
//
// The whole and fractional parts are formatted as integers, floats cannot
// represent every amount.
func (e *Engine) formatAmount(amount decimal.Decimal) string {
	amount = amount.Round(centPlaces)
	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Abs().Shift(centPlaces).IntPart()

	sign := ""
	if amount.IsNegative() && whole.IsZero() {
		sign = "-"
	}

	return sign + e.printer.Sprintf("%v", number.Decimal(whole.IntPart())) +
		e.separator +
		e.printer.Sprintf("%v", number.Decimal(cents, number.MinIntegerDigits(centPlaces)))
}

// decimalSeparator returns the decimal separator of the printer's language.
func decimalSeparator(p *message.Printer) string {
	return strings.TrimFunc(p.Sprintf("%v", number.Decimal(1.5, number.Scale(1))), unicode.IsDigit)
}

// IsRejection reports if the error is caused by the input or the data,
// not by a failure of the store.
func IsRejection(err error) bool {
	return errors.Is(err, ErrNoFixedCostRecords) ||
		errors.Is(err, ErrNoEligibleContracts) ||
		errors.Is(err, ErrZeroWeight) ||
		errors.Is(err, ErrAllocationExists)
}
