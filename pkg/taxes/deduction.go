// Package taxes computes the yearly Danish tax deduction on mortgage
// interest and contribution charges.
package taxes

import (
	"math"

	"github.com/avjensen/realkredit-compare/pkg/constants"
	"github.com/avjensen/realkredit-compare/pkg/mathutil"
	"github.com/avjensen/realkredit-compare/pkg/rates"
)

// Filer describes the taxpayer context for the interest deduction.
type Filer struct {
	Single               bool
	ChurchTax            bool
	OtherInterestPerYear float64
}

// DeductibleCap returns how much deduction capacity the filer has left at
// the favorable rate after interest already deducted elsewhere. Never
// negative.
func DeductibleCap(filer Filer) float64 {
	limit := constants.DeductibleCouple
	if filer.Single {
		limit = constants.DeductibleSingle
	}
	return math.Max(0, limit-filer.OtherInterestPerYear)
}

// BaseTaxPercent returns the filer's combined municipal (and optionally
// church) tax rate in percent.
func BaseTaxPercent(filer Filer, rate rates.MunicipalityTaxRate) float64 {
	if filer.ChurchTax {
		return rate.TaxPercent + rate.ChurchTaxPercent
	}
	return rate.TaxPercent
}

// YearlyDeduction computes the tax deduction for one year of interest and
// contribution charges. Deductible amounts below the filer's remaining cap
// are deducted at the base tax rate plus the statutory extra percentage
// points; amounts above the cap are deducted at the plain base rate.
func YearlyDeduction(yearlyInterest, yearlyExtraCharge float64, filer Filer, rate rates.MunicipalityTaxRate) float64 {
	capLeft := DeductibleCap(filer)
	baseTax := BaseTaxPercent(filer, rate)

	deductible := yearlyInterest + yearlyExtraCharge
	belowCap := math.Min(deductible, capLeft)
	aboveCap := math.Max(0, deductible-capLeft)

	deductionBelowCap := mathutil.ApplyPercentage(belowCap, baseTax+constants.ExtraDeductiblePercentBelowCap)
	deductionAboveCap := mathutil.ApplyPercentage(aboveCap, baseTax)
	return deductionBelowCap + deductionAboveCap
}
