// Package annuity generates year-by-year amortization schedules for
// annuity loans under Danish mortgage conventions.
package annuity

import (
	"fmt"
	"math"

	"github.com/avjensen/realkredit-compare/pkg/constants"
	"github.com/avjensen/realkredit-compare/pkg/mathutil"
	"github.com/avjensen/realkredit-compare/pkg/rates"
	"github.com/avjensen/realkredit-compare/pkg/taxes"
	"go.uber.org/zap"
)

// BasicLoanInfo describes one loan's economics as fed to the schedule
// generator. Percentage fields are plain numbers, e.g. 4 for 4%.
type BasicLoanInfo struct {
	Principal               float64            `json:"principal"`
	YearsLeft               int                `json:"yearsLeft"`
	ExtraChargePercent      float64            `json:"extraChargePercent"`
	InterestPercent         float64            `json:"interestPercent"`
	OtherInterestPerYear    float64            `json:"otherInterestPerYear"`
	InstalmentFreeYearsLeft int                `json:"instalmentFreeYearsLeft"`
	Single                  bool               `json:"single"`
	ChurchTax               bool               `json:"churchTax"`
	Municipality            rates.Municipality `json:"municipality"`
}

// YearState is one row of an amortization schedule: the totals for a single
// year. Principal is the outstanding balance at the start of the year.
type YearState struct {
	Principal    float64 `json:"principal"`
	ExtraCharge  float64 `json:"extraCharge"`
	Interest     float64 `json:"interest"`
	Instalment   float64 `json:"instalment"`
	PricePreTax  float64 `json:"pricePreTax"`
	TaxDeduction float64 `json:"taxDeduction"`
	PricePostTax float64 `json:"pricePostTax"`
}

// yearTotals accumulates the per-term quantities within a single year.
type yearTotals struct {
	extraCharge float64
	interest    float64
	instalment  float64
	pricePreTax float64
}

// ScheduleGenerator generates loan amortization schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Generate produces the full amortization schedule for a loan paying
// termsPerYear terms per year. It returns YearsLeft paying rows followed by
// one all-zero row representing the fully repaid loan.
//
// Each year's opening principal is the previous year's principal minus its
// instalment, and within a year the annuity payment is recomputed every
// term against the terms remaining across the whole residual life of the
// loan. This keeps the payment correctly amortizing as the instalment-free
// window shifts the remaining balance; do not replace it with a single
// upfront payment calculation.
func (g *ScheduleGenerator) Generate(loan BasicLoanInfo, termsPerYear int) ([]YearState, error) {
	if termsPerYear <= 0 {
		return nil, fmt.Errorf("terms per year must be positive, got %d", termsPerYear)
	}

	taxRate, err := rates.MunicipalityTax(loan.Municipality)
	if err != nil {
		return nil, err
	}
	filer := taxes.Filer{
		Single:               loan.Single,
		ChurchTax:            loan.ChurchTax,
		OtherInterestPerYear: loan.OtherInterestPerYear,
	}

	schedule := make([]YearState, 0, loan.YearsLeft+1)
	for year := 0; year < loan.YearsLeft; year++ {
		principalLeft := loan.Principal
		if year > 0 {
			previous := schedule[year-1]
			principalLeft = previous.Principal - previous.Instalment
		}

		var totals yearTotals
		for term := 0; term < termsPerYear; term++ {
			termsLeft := (loan.YearsLeft-year)*termsPerYear - term
			totals = addTermPayment(loan, termsPerYear, termsLeft, principalLeft, totals)
		}

		taxDeduction := taxes.YearlyDeduction(totals.interest, totals.extraCharge, filer, taxRate)
		schedule = append(schedule, YearState{
			Principal:    principalLeft,
			ExtraCharge:  totals.extraCharge,
			Interest:     totals.interest,
			Instalment:   totals.instalment,
			PricePreTax:  totals.pricePreTax,
			TaxDeduction: taxDeduction,
			PricePostTax: totals.pricePreTax - taxDeduction,
		})
	}

	// Terminal row: the loan is fully repaid after the last paying year.
	schedule = append(schedule, YearState{})

	g.logger.Debug("generated amortization schedule",
		zap.String("op", "annuity.Generate"),
		zap.Float64("principal", loan.Principal),
		zap.Int("years", loan.YearsLeft),
		zap.Int("termsPerYear", termsPerYear),
	)
	return schedule, nil
}

// addTermPayment computes one term's interest, instalment, contribution
// charge and pre-tax payment and accumulates them into the year's totals.
func addTermPayment(loan BasicLoanInfo, termsPerYear, termsLeft int, principalAtYearStart float64, totals yearTotals) yearTotals {
	interestRate := loan.InterestPercent / constants.PercentageMultiplier
	principalForTerm := principalAtYearStart - totals.instalment

	termsPassed := loan.YearsLeft*termsPerYear - termsLeft
	instalmentFreeTermsLeft := loan.InstalmentFreeYearsLeft*termsPerYear - termsPassed

	interest := mathutil.ApplyPercentage(principalForTerm, loan.InterestPercent) / float64(termsPerYear)
	payment := annuityPayment(principalForTerm, interestRate, termsPerYear, termsLeft)
	extraCharge := mathutil.ApplyPercentage(principalForTerm, loan.ExtraChargePercent) / float64(termsPerYear)

	instalment := payment - interest
	pricePreTax := payment + extraCharge
	if instalmentFreeTermsLeft > 0 {
		instalment = 0
		pricePreTax = interest + extraCharge
	}

	return yearTotals{
		extraCharge: totals.extraCharge + extraCharge,
		interest:    totals.interest + interest,
		instalment:  totals.instalment + instalment,
		pricePreTax: totals.pricePreTax + pricePreTax,
	}
}

// annuityPayment is the standard fixed annuity payment for the remaining
// balance over the remaining term count. Zero-interest loans amortize
// linearly.
func annuityPayment(remainingPrincipal, interestRate float64, termsPerYear, termsLeft int) float64 {
	if interestRate == 0 {
		return remainingPrincipal / float64(termsLeft)
	}
	periodRate := interestRate / float64(termsPerYear)
	return remainingPrincipal * periodRate / (1 - math.Pow(1+periodRate, -float64(termsLeft)))
}
