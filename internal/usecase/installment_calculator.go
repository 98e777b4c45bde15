package usecase

import (
	"github.com/shopspring/decimal"

	"casamento_presentes/internal/domain/entities"
)

const (
	// MaxInstallments is the largest installment count offered to guests.
	MaxInstallments = 12
	// installmentRateStep is the interest added per installment after the first, in percent.
	installmentRateStep = 2.5
)

// ComputeInstallments returns the installment options for amount, ordered from 1 to
// MaxInstallments. The first option is interest free and every following one adds
// 2.5% over the whole amount. Amounts are rounded half-up to the centavo.
//
// A non-positive amount yields an empty slice.
func ComputeInstallments(amount entities.Cents) []entities.InstallmentOption {
	if amount <= 0 {
		return []entities.InstallmentOption{}
	}

	base := amount.Decimal()
	step := decimal.NewFromFloat(installmentRateStep)
	hundred := decimal.NewFromInt(100)

	options := make([]entities.InstallmentOption, 0, MaxInstallments)
	for i := 1; i <= MaxInstallments; i++ {
		rate := step.Mul(decimal.NewFromInt(int64(i - 1)))
		interest := base.Mul(rate).Div(hundred).Round(2)
		total := base.Add(interest)
		per := total.DivRound(decimal.NewFromInt(int64(i)), 2)

		ratePct, _ := rate.Float64()
		options = append(options, entities.InstallmentOption{
			Installments:      i,
			InstallmentAmount: entities.CentsFromDecimal(per),
			TotalAmount:       entities.CentsFromDecimal(total),
			TotalInterest:     entities.CentsFromDecimal(interest),
			InterestRate:      ratePct,
		})
	}
	return options
}

// FindInstallment returns the option for n installments.
func FindInstallment(options []entities.InstallmentOption, n int) (entities.InstallmentOption, bool) {
	for _, o := range options {
		if o.Installments == n {
			return o, true
		}
	}
	return entities.InstallmentOption{}, false
}
