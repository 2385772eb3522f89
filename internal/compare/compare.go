// Package compare orchestrates the old-vs-new loan comparison: it amortizes
// the current loan as-is, derives the refinanced loan from conversion
// mechanics, amortizes it, and produces a year-aligned difference and
// breakeven report.
package compare

import (
	"github.com/avjensen/realkredit-compare/pkg/annuity"
	"github.com/avjensen/realkredit-compare/pkg/charges"
	"github.com/avjensen/realkredit-compare/pkg/constants"
	"github.com/avjensen/realkredit-compare/pkg/mathutil"
	"github.com/avjensen/realkredit-compare/pkg/rates"
	"go.uber.org/zap"
)

// AllLoanInfo is the full input record for a comparison: the current loan's
// economics plus the new-loan conversion fields. Percentage fields are
// plain numbers, e.g. 4 for 4%. Fees may be negative to represent a
// simultaneous extraordinary repayment.
type AllLoanInfo struct {
	Principal               float64            `json:"principal"`
	YearsLeft               int                `json:"yearsLeft"`
	ExtraCharge             float64            `json:"extraCharge"`
	Interest                float64            `json:"interest"`
	InstalmentFreeYearsLeft int                `json:"instalmentFreeYearsLeft"`
	EstimatedPrice          float64            `json:"estimatedPrice"`
	OtherInterestPerYear    float64            `json:"otherInterestPerYear"`
	CurrentPrice            float64            `json:"currentPrice"`
	Single                  bool               `json:"single"`
	ChurchTax               bool               `json:"churchTax"`
	NewLoanInstalmentFree   bool               `json:"newLoanInstalmentFree"`
	Municipality            rates.Municipality `json:"municipality"`
	Institute               rates.Institute    `json:"institute"`
	CustomerKroner          bool               `json:"customerKroner"`
	FeesNewLoan             float64            `json:"feesNewLoan"`
	InterestNewLoan         float64            `json:"interestNewLoan"`
	CurrentPriceNewLoan     float64            `json:"currentPriceNewLoan"`
	RDQuarterlyPayments     bool               `json:"rdQuarterlyPayments"`
}

// LoanDifference aggregates first-year values, full-horizon payment totals
// and breakeven markers for the two schedules. Breakeven fields hold the
// first 1-based year the new loan's metric exceeds the old loan's, or -1 if
// that never happens.
type LoanDifference struct {
	PrincipalOldLoan       float64 `json:"principalOldLoan"`
	PrincipalNewLoan       float64 `json:"principalNewLoan"`
	PrincipalDifference    float64 `json:"principalDifference"`
	PricePostTaxOldLoan    float64 `json:"pricePostTaxOldLoan"`
	PricePostTaxNewLoan    float64 `json:"pricePostTaxNewLoan"`
	PricePostTaxDifference float64 `json:"pricePostTaxDifference"`
	PricePreTaxOldLoan     float64 `json:"pricePreTaxOldLoan"`
	PricePreTaxNewLoan     float64 `json:"pricePreTaxNewLoan"`
	PricePreTaxDifference  float64 `json:"pricePreTaxDifference"`
	InstalmentOldLoan      float64 `json:"instalmentOldLoan"`
	InstalmentNewLoan      float64 `json:"instalmentNewLoan"`
	InstalmentDifference   float64 `json:"instalmentDifference"`
	ExtraChargeOldLoan     float64 `json:"extraChargeOldLoan"`
	ExtraChargeNewLoan     float64 `json:"extraChargeNewLoan"`
	ExtraChargeDifference  float64 `json:"extraChargeDifference"`

	TotalPaymentPreTaxOldLoan    float64 `json:"totalPaymentPreTaxOldLoan"`
	TotalPaymentPreTaxNewLoan    float64 `json:"totalPaymentPreTaxNewLoan"`
	TotalPaymentPreTaxDifference float64 `json:"totalPaymentPreTaxDifference"`

	TotalPaymentPostTaxOldLoan    float64 `json:"totalPaymentPostTaxOldLoan"`
	TotalPaymentPostTaxNewLoan    float64 `json:"totalPaymentPostTaxNewLoan"`
	TotalPaymentPostTaxDifference float64 `json:"totalPaymentPostTaxDifference"`

	BreakevenPrincipalAfterYears            int `json:"breakevenPrincipalAfterYears"`
	BreakevenPaymentsPostTaxAfterYears      int `json:"breakevenPaymentsPostTaxAfterYears"`
	BreakevenTotalPaymentsPostTaxAfterYears int `json:"breakevenTotalPaymentsPostTaxAfterYears"`
}

// TotalCalculation is the full comparison result.
type TotalCalculation struct {
	OldLoan    []annuity.YearState `json:"oldLoan"`
	NewLoan    []annuity.YearState `json:"newLoan"`
	Difference LoanDifference      `json:"difference"`
}

// Comparator runs old-vs-new loan comparisons.
type Comparator struct {
	logger    *zap.Logger
	generator *annuity.ScheduleGenerator
}

// NewComparator creates a new comparator instance.
func NewComparator(logger *zap.Logger) *Comparator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Comparator{
		logger:    logger,
		generator: annuity.NewScheduleGenerator(logger),
	}
}

// Compare amortizes the old loan as given and the new loan derived from the
// conversion fields, then computes the difference report. The input record
// is taken by value and never mutated; all adjustments (price clamp,
// KundeKroner rebate) produce local copies.
func (c *Comparator) Compare(info AllLoanInfo) (*TotalCalculation, error) {
	// A refinancing can always be settled at par, so clamp the old bond's
	// market price before any principal or charge computation.
	if info.CurrentPrice > constants.ParBondPrice {
		info.CurrentPrice = constants.ParBondPrice
	}

	oldExtraCharge := info.ExtraCharge
	if info.CustomerKroner {
		oldExtraCharge -= constants.CustomerKronerRebate
	}

	termsPerYear := info.Institute.TermsPerYear(info.RDQuarterlyPayments)

	oldLoan, err := c.generator.Generate(annuity.BasicLoanInfo{
		Principal:               info.Principal,
		YearsLeft:               info.YearsLeft,
		ExtraChargePercent:      oldExtraCharge,
		InterestPercent:         info.Interest,
		OtherInterestPerYear:    info.OtherInterestPerYear,
		InstalmentFreeYearsLeft: info.InstalmentFreeYearsLeft,
		Single:                  info.Single,
		ChurchTax:               info.ChurchTax,
		Municipality:            info.Municipality,
	}, termsPerYear)
	if err != nil {
		return nil, err
	}

	newPrincipal := NewLoanPrincipal(info)
	newExtraCharge, err := charges.ContributionCharge(newPrincipal, info.EstimatedPrice,
		info.Institute, info.NewLoanInstalmentFree, info.RDQuarterlyPayments)
	if err != nil {
		return nil, err
	}
	// The KundeKroner rebate carries over to the new loan at Totalkredit only.
	if info.CustomerKroner && info.Institute == rates.InstituteTotalkredit {
		newExtraCharge -= constants.CustomerKronerRebate
	}

	newLoanInstalmentFreeYears := 0
	if info.NewLoanInstalmentFree {
		newLoanInstalmentFreeYears = constants.NewLoanInstalmentFreeYears
	}

	// Refinancing preserves the payoff horizon.
	newLoan, err := c.generator.Generate(annuity.BasicLoanInfo{
		Principal:               newPrincipal,
		YearsLeft:               info.YearsLeft,
		ExtraChargePercent:      newExtraCharge,
		InterestPercent:         info.InterestNewLoan,
		OtherInterestPerYear:    info.OtherInterestPerYear,
		InstalmentFreeYearsLeft: newLoanInstalmentFreeYears,
		Single:                  info.Single,
		ChurchTax:               info.ChurchTax,
		Municipality:            info.Municipality,
	}, termsPerYear)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("compared loans",
		zap.String("op", "compare.Compare"),
		zap.Float64("oldPrincipal", info.Principal),
		zap.Float64("newPrincipal", newPrincipal),
		zap.Float64("oldExtraCharge", oldExtraCharge),
		zap.Float64("newExtraCharge", newExtraCharge),
		zap.Int("termsPerYear", termsPerYear),
	)

	difference := Difference(oldLoan, newLoan, oldExtraCharge, newExtraCharge)
	return &TotalCalculation{
		OldLoan:    oldLoan,
		NewLoan:    newLoan,
		Difference: difference,
	}, nil
}

// NewLoanPrincipal computes the principal of the refinanced loan: the old
// bond is bought back at its market price (clamped at par) and the new bond
// is issued at its own market price, plus transaction fees.
func NewLoanPrincipal(info AllLoanInfo) float64 {
	currentPrice := info.CurrentPrice
	if currentPrice > constants.ParBondPrice {
		currentPrice = constants.ParBondPrice
	}
	buybackCost := mathutil.ApplyPercentage(info.Principal, currentPrice)
	issuePriceFactor := 1 + (1 - info.CurrentPriceNewLoan/constants.PercentageMultiplier)
	return buybackCost*issuePriceFactor + info.FeesNewLoan
}

// Difference builds the difference report for two schedules. First-year
// values come from row 1; the running payment sums cover the full horizon
// of both schedules even when their lengths differ, treating the shorter
// schedule's tail as zero.
func Difference(oldLoan, newLoan []annuity.YearState, oldExtraCharge, newExtraCharge float64) LoanDifference {
	d := LoanDifference{
		PrincipalOldLoan:       oldLoan[0].Principal,
		PrincipalNewLoan:       newLoan[0].Principal,
		PrincipalDifference:    newLoan[0].Principal - oldLoan[0].Principal,
		PricePostTaxOldLoan:    oldLoan[0].PricePostTax,
		PricePostTaxNewLoan:    newLoan[0].PricePostTax,
		PricePostTaxDifference: newLoan[0].PricePostTax - oldLoan[0].PricePostTax,
		PricePreTaxOldLoan:     oldLoan[0].PricePreTax,
		PricePreTaxNewLoan:     newLoan[0].PricePreTax,
		PricePreTaxDifference:  newLoan[0].PricePreTax - oldLoan[0].PricePreTax,
		InstalmentOldLoan:      oldLoan[0].Instalment,
		InstalmentNewLoan:      newLoan[0].Instalment,
		InstalmentDifference:   newLoan[0].Instalment - oldLoan[0].Instalment,
		ExtraChargeOldLoan:     oldExtraCharge,
		ExtraChargeNewLoan:     newExtraCharge,
		ExtraChargeDifference:  newExtraCharge - oldExtraCharge,

		BreakevenPrincipalAfterYears:            -1,
		BreakevenPaymentsPostTaxAfterYears:      -1,
		BreakevenTotalPaymentsPostTaxAfterYears: -1,
	}

	maxYears := len(oldLoan)
	if len(newLoan) > maxYears {
		maxYears = len(newLoan)
	}

	for i := 0; i < maxYears; i++ {
		// Report years are 1-based.
		year := i + 1

		if len(oldLoan) >= year {
			if len(newLoan) >= year && newLoan[i].Principal > oldLoan[i].Principal &&
				d.BreakevenPrincipalAfterYears == -1 {
				d.BreakevenPrincipalAfterYears = year
			}
			if len(newLoan) >= year && newLoan[i].PricePostTax > oldLoan[i].PricePostTax &&
				d.BreakevenPaymentsPostTaxAfterYears == -1 {
				d.BreakevenPaymentsPostTaxAfterYears = year
			}

			d.TotalPaymentPreTaxOldLoan += oldLoan[i].PricePreTax
			d.TotalPaymentPostTaxOldLoan += oldLoan[i].PricePostTax
		}

		if len(newLoan) >= year {
			d.TotalPaymentPreTaxNewLoan += newLoan[i].PricePreTax
			d.TotalPaymentPostTaxNewLoan += newLoan[i].PricePostTax
		}

		// The running totals keep accumulating through the longer horizon;
		// a schedule that is already repaid contributes zeros.
		if d.TotalPaymentPostTaxNewLoan > d.TotalPaymentPostTaxOldLoan &&
			d.BreakevenTotalPaymentsPostTaxAfterYears == -1 {
			d.BreakevenTotalPaymentsPostTaxAfterYears = year
		}
	}

	d.TotalPaymentPreTaxDifference = d.TotalPaymentPreTaxNewLoan - d.TotalPaymentPreTaxOldLoan
	d.TotalPaymentPostTaxDifference = d.TotalPaymentPostTaxNewLoan - d.TotalPaymentPostTaxOldLoan
	return d
}
