// Package examples provides ready-made comparison scenarios used by the CLI
// and as regression fixtures.
package examples

import (
	"fmt"

	"github.com/avjensen/realkredit-compare/internal/compare"
	"github.com/avjensen/realkredit-compare/pkg/rates"
)

// ConvertUp is a conversion from a 1% loan bought back well below par to a
// 4% loan: the borrower cuts principal in exchange for a higher coupon.
func ConvertUp() compare.AllLoanInfo {
	return compare.AllLoanInfo{
		Principal:               2100000,
		YearsLeft:               27,
		ExtraCharge:             0.74,
		Interest:                1,
		EstimatedPrice:          3400000,
		OtherInterestPerYear:    0,
		CurrentPrice:            74,
		Single:                  false,
		ChurchTax:               false,
		Municipality:            rates.MunicipalityAlbertslund,
		CustomerKroner:          true,
		CurrentPriceNewLoan:     95,
		FeesNewLoan:             15000,
		InterestNewLoan:         4,
		NewLoanInstalmentFree:   false,
		InstalmentFreeYearsLeft: 0,
		Institute:               rates.InstituteTotalkredit,
		RDQuarterlyPayments:     false,
	}
}

// ConvertDown is a conversion from a 4% loan at par to a 2% loan: the
// borrower takes on slightly more principal in exchange for a lower coupon.
func ConvertDown() compare.AllLoanInfo {
	return compare.AllLoanInfo{
		Principal:               1600000,
		YearsLeft:               27,
		ExtraCharge:             0.49,
		Interest:                4,
		EstimatedPrice:          3400000,
		OtherInterestPerYear:    0,
		CurrentPrice:            100,
		Single:                  false,
		ChurchTax:               false,
		Municipality:            rates.MunicipalityAlbertslund,
		CustomerKroner:          true,
		CurrentPriceNewLoan:     98,
		FeesNewLoan:             15000,
		InterestNewLoan:         2,
		NewLoanInstalmentFree:   false,
		InstalmentFreeYearsLeft: 0,
		Institute:               rates.InstituteTotalkredit,
		RDQuarterlyPayments:     false,
	}
}

// ByName returns the example scenario with the given name.
func ByName(name string) (compare.AllLoanInfo, error) {
	switch name {
	case "convert-up", "1":
		return ConvertUp(), nil
	case "convert-down", "2":
		return ConvertDown(), nil
	default:
		return compare.AllLoanInfo{}, fmt.Errorf("unknown example %q (available: convert-up, convert-down)", name)
	}
}
