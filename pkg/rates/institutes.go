package rates

import (
	"fmt"
	"sort"

	"github.com/avjensen/realkredit-compare/pkg/constants"
)

// Institute identifies a Danish mortgage lending institute.
type Institute string

// The supported lending institutes.
const (
	InstituteJyske       Institute = "Jyske Realkredit"
	InstituteNordea      Institute = "Nordea"
	InstituteRD          Institute = "Realkredit Danmark"
	InstituteTotalkredit Institute = "Totalkredit"
)

// ContributionChargeTier is one loan-to-value interval of an institute's
// contribution charge schedule. From and To are LTV fractions
// (principal / appraised value); the charges are yearly percentages of the
// outstanding principal. Tiers are contiguous and ascending, and the last
// tier has no ceiling: LTV beyond To still pays that tier's rate on the
// excess.
type ContributionChargeTier struct {
	From                  float64
	To                    float64
	ChargePercent         float64
	InstalmentFreePercent float64
}

// contributionChargeTiers holds the published contribution charge
// (bidragssats) schedules per institute. Realkredit Danmark's schedule is
// quoted for monthly payments; its quarterly-payment surcharge is applied
// separately (see RDQuarterlyPaymentSurcharge).
var contributionChargeTiers = map[Institute][]ContributionChargeTier{
	// https://www.totalkredit.dk/siteassets/dokumenter/privat/prisblad/prisblad--privat.pdf
	InstituteTotalkredit: {
		{From: 0, To: 0.4, ChargePercent: 0.45, InstalmentFreePercent: 0.55},
		{From: 0.4, To: 0.6, ChargePercent: 0.85, InstalmentFreePercent: 1.15},
		{From: 0.6, To: 0.8, ChargePercent: 1.2, InstalmentFreePercent: 2.0},
	},
	// https://www.jyskebank.dk/privat/priser/bolig
	InstituteJyske: {
		{From: 0, To: 0.4, ChargePercent: 0.325, InstalmentFreePercent: 0.475},
		{From: 0.4, To: 0.6, ChargePercent: 0.8, InstalmentFreePercent: 0.95},
		{From: 0.6, To: 0.8, ChargePercent: 1.0, InstalmentFreePercent: 2.0},
	},
	// https://www.nordea.dk/Images/144-119161/20170105bidragssatser_.pdf
	InstituteNordea: {
		{From: 0, To: 0.4, ChargePercent: 0.375, InstalmentFreePercent: 0.525},
		{From: 0.4, To: 0.6, ChargePercent: 0.825, InstalmentFreePercent: 1.125},
		{From: 0.6, To: 0.8, ChargePercent: 1.125, InstalmentFreePercent: 1.825},
	},
	// https://rd.dk/PDF/Privat/prisblad-privat.pdf
	InstituteRD: {
		{From: 0, To: 0.4, ChargePercent: 0.2748, InstalmentFreePercent: 0.3748},
		{From: 0.4, To: 0.6, ChargePercent: 0.8248, InstalmentFreePercent: 0.9248},
		{From: 0.6, To: 0.8, ChargePercent: 1.35, InstalmentFreePercent: 2.15},
	},
}

// ContributionTiers looks up the contribution charge schedule for an
// institute. Unknown institutes are a configuration error and fail fast.
func ContributionTiers(institute Institute) ([]ContributionChargeTier, error) {
	tiers, ok := contributionChargeTiers[institute]
	if !ok {
		return nil, fmt.Errorf("unknown lending institute %q", institute)
	}
	return tiers, nil
}

// IsInstitute reports whether the given name is a known lending institute.
func IsInstitute(name string) bool {
	_, ok := contributionChargeTiers[Institute(name)]
	return ok
}

// Institutes returns all known institutes in alphabetical order.
func Institutes() []Institute {
	all := make([]Institute, 0, len(contributionChargeTiers))
	for institute := range contributionChargeTiers {
		all = append(all, institute)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// TermsPerYear returns the number of payment terms per year for the
// institute. Realkredit Danmark pays monthly unless the quarterly override
// is set; all other institutes pay quarterly.
func (i Institute) TermsPerYear(quarterlyOverride bool) int {
	if i == InstituteRD && !quarterlyOverride {
		return constants.MonthsPerYear
	}
	return constants.QuartersPerYear
}
