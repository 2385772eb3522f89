// Package charges computes the blended contribution charge (bidragssats)
// for a loan by walking the institute's loan-to-value tier schedule.
package charges

import (
	"github.com/avjensen/realkredit-compare/pkg/constants"
	"github.com/avjensen/realkredit-compare/pkg/rates"
)

// ContributionCharge computes the effective yearly contribution charge
// percentage for a loan of the given principal against the appraised
// property value.
//
// The result is a weighted average of tier rates: each tier below the
// loan's LTV contributes (to-from)/ltv of its rate, and the deepest
// applicable tier contributes (ltv-from)/ltv of its rate. The deepest tier
// is not capped at its ceiling; LTV beyond the highest tier keeps paying
// that tier's rate on the excess.
//
// Degenerate input (non-positive appraised value or LTV) yields 0 rather
// than an error so that malformed loan data cannot push NaN or Inf into an
// amortization schedule.
func ContributionCharge(principal, appraisedValue float64, institute rates.Institute, instalmentFree, quarterlyPayments bool) (float64, error) {
	tiers, err := rates.ContributionTiers(institute)
	if err != nil {
		return 0, err
	}

	if appraisedValue <= 0 {
		return 0, nil
	}
	ltv := principal / appraisedValue

	applicable := 0
	for _, tier := range tiers {
		if ltv > tier.From {
			applicable++
		}
	}
	if applicable == 0 {
		return 0, nil
	}

	// Realkredit Danmark quotes its schedule for monthly payments and adds
	// a fixed per-tier surcharge for the quarterly payment option.
	surcharge := 0.0
	if quarterlyPayments && institute == rates.InstituteRD {
		surcharge = constants.RDQuarterlyPaymentSurcharge
	}

	charge := 0.0
	for i := 0; i < applicable; i++ {
		tier := tiers[i]
		rate := tier.ChargePercent
		if instalmentFree {
			rate = tier.InstalmentFreePercent
		}
		rate += surcharge

		if i == applicable-1 {
			// Only the fraction of the LTV that reaches into the deepest
			// tier is weighted by that tier's rate.
			charge += (ltv - tier.From) / ltv * rate
			continue
		}
		charge += (tier.To - tier.From) / ltv * rate
	}

	return charge, nil
}
