package compare

import (
	"math"
	"testing"

	"github.com/avjensen/realkredit-compare/pkg/annuity"
	"github.com/avjensen/realkredit-compare/pkg/rates"
)

// convertUp is the canonical "convert up" scenario: buy back a 1% loan well
// below par and issue a 4% loan.
func convertUp() AllLoanInfo {
	return AllLoanInfo{
		Principal:           2100000,
		YearsLeft:           27,
		ExtraCharge:         0.74,
		Interest:            1,
		EstimatedPrice:      3400000,
		CurrentPrice:        74,
		Municipality:        rates.MunicipalityAlbertslund,
		CustomerKroner:      true,
		CurrentPriceNewLoan: 95,
		FeesNewLoan:         15000,
		InterestNewLoan:     4,
		Institute:           rates.InstituteTotalkredit,
	}
}

func TestNewLoanPrincipal(t *testing.T) {
	tests := []struct {
		name     string
		info     AllLoanInfo
		expected float64
	}{
		{
			name: "Convert up",
			info: convertUp(),
			// 2100000 * 0.74 * (1 + (1 - 0.95)) + 15000
			expected: 1646700,
		},
		{
			name: "At par both ways",
			info: AllLoanInfo{
				Principal:           1000000,
				CurrentPrice:        100,
				CurrentPriceNewLoan: 100,
			},
			expected: 1000000,
		},
		{
			name: "Above-par current price is clamped",
			info: AllLoanInfo{
				Principal:           1000000,
				CurrentPrice:        105,
				CurrentPriceNewLoan: 100,
			},
			expected: 1000000,
		},
		{
			name: "Negative fees model an extraordinary repayment",
			info: AllLoanInfo{
				Principal:           1000000,
				CurrentPrice:        100,
				CurrentPriceNewLoan: 100,
				FeesNewLoan:         -200000,
			},
			expected: 800000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewLoanPrincipal(tt.info)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("NewLoanPrincipal() = %.6f, expected %.6f", result, tt.expected)
			}
		})
	}
}

// Regression fixture for the full "convert up" comparison, values derived
// from the reference schedule.
func TestCompareConvertUp(t *testing.T) {
	comparator := NewComparator(nil)

	result, err := comparator.Compare(convertUp())
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}

	if len(result.OldLoan) != 28 || len(result.NewLoan) != 28 {
		t.Fatalf("schedule lengths = %d/%d, expected 28/28", len(result.OldLoan), len(result.NewLoan))
	}

	d := result.Difference
	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"old principal", d.PrincipalOldLoan, 2100000},
		{"new principal", d.PrincipalNewLoan, 1646700},
		{"old extra charge", d.ExtraChargeOldLoan, 0.59},
		{"new extra charge", d.ExtraChargeNewLoan, 0.3696423114},
		{"old year-1 pre-tax", d.PricePreTaxOldLoan, 101085.9387},
		{"new year-1 pre-tax", d.PricePreTaxNewLoan, 106054.7532},
		{"old year-1 post-tax", d.PricePostTaxOldLoan, 90003.0486},
		{"new year-1 post-tax", d.PricePostTaxNewLoan, 82067.1709},
		{"old year-1 instalment", d.InstalmentOldLoan, 68101.1469},
		{"new year-1 instalment", d.InstalmentNewLoan, 34663.1392},
		{"old total pre-tax", d.TotalPaymentPreTaxOldLoan, 2575171.6138},
		{"new total pre-tax", d.TotalPaymentPreTaxNewLoan, 2797793.3357},
		{"old total post-tax", d.TotalPaymentPostTaxOldLoan, 2415513.9515},
		{"new total post-tax", d.TotalPaymentPostTaxNewLoan, 2411025.9749},
	}
	for _, c := range checks {
		tolerance := 0.01
		if c.expected < 10 {
			tolerance = 1e-6
		}
		if math.Abs(c.got-c.expected) > tolerance {
			t.Errorf("%s = %.6f, expected %.6f", c.name, c.got, c.expected)
		}
	}

	if d.BreakevenPrincipalAfterYears != 21 {
		t.Errorf("BreakevenPrincipalAfterYears = %d, expected 21", d.BreakevenPrincipalAfterYears)
	}
	if d.BreakevenPaymentsPostTaxAfterYears != 16 {
		t.Errorf("BreakevenPaymentsPostTaxAfterYears = %d, expected 16", d.BreakevenPaymentsPostTaxAfterYears)
	}
	if d.BreakevenTotalPaymentsPostTaxAfterYears != -1 {
		t.Errorf("BreakevenTotalPaymentsPostTaxAfterYears = %d, expected -1", d.BreakevenTotalPaymentsPostTaxAfterYears)
	}
}

// Regression fixture for the "convert down" comparison (4% at par to 2%):
// the new loan starts with more principal, so the principal breakeven is
// immediate.
func TestCompareConvertDown(t *testing.T) {
	comparator := NewComparator(nil)

	info := convertUp()
	info.Principal = 1600000
	info.ExtraCharge = 0.49
	info.Interest = 4
	info.CurrentPrice = 100
	info.CurrentPriceNewLoan = 98
	info.InterestNewLoan = 2

	result, err := comparator.Compare(info)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}

	d := result.Difference
	if math.Abs(d.PrincipalNewLoan-1647000) > 0.01 {
		t.Errorf("new principal = %.4f, expected 1647000", d.PrincipalNewLoan)
	}
	if d.BreakevenPrincipalAfterYears != 1 {
		t.Errorf("BreakevenPrincipalAfterYears = %d, expected 1", d.BreakevenPrincipalAfterYears)
	}
	if d.BreakevenPaymentsPostTaxAfterYears != -1 {
		t.Errorf("BreakevenPaymentsPostTaxAfterYears = %d, expected -1", d.BreakevenPaymentsPostTaxAfterYears)
	}
	if math.Abs(d.TotalPaymentPostTaxNewLoan-2031350.4058) > 0.01 {
		t.Errorf("new total post-tax = %.4f, expected 2031350.4058", d.TotalPaymentPostTaxNewLoan)
	}
	if d.TotalPaymentPostTaxDifference >= 0 {
		t.Errorf("converting down should reduce total post-tax payments, got difference %.2f", d.TotalPaymentPostTaxDifference)
	}
}

// The comparator must not mutate the caller's input record when applying
// the KundeKroner rebate or the par clamp.
func TestCompareDoesNotMutateInput(t *testing.T) {
	comparator := NewComparator(nil)

	info := convertUp()
	info.CurrentPrice = 105
	original := info

	if _, err := comparator.Compare(info); err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}
	if info != original {
		t.Errorf("Compare() mutated its input: %+v != %+v", info, original)
	}
}

// The KundeKroner rebate always applies to the old loan but carries over to
// the new loan only at Totalkredit.
func TestCompareCustomerKronerRebate(t *testing.T) {
	comparator := NewComparator(nil)

	totalkredit := convertUp()
	result, err := comparator.Compare(totalkredit)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}
	if math.Abs(result.Difference.ExtraChargeOldLoan-0.59) > 1e-9 {
		t.Errorf("old extra charge = %.4f, expected 0.74 - 0.15 = 0.59", result.Difference.ExtraChargeOldLoan)
	}

	jyske := convertUp()
	jyske.Institute = rates.InstituteJyske
	jyskeResult, err := comparator.Compare(jyske)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}
	if math.Abs(jyskeResult.Difference.ExtraChargeOldLoan-0.59) > 1e-9 {
		t.Errorf("old extra charge = %.4f, expected 0.59 regardless of institute", jyskeResult.Difference.ExtraChargeOldLoan)
	}

	// Totalkredit's new charge gets the rebate; Jyske's does not.
	rawTotalkredit := result.Difference.ExtraChargeNewLoan
	if math.Abs(rawTotalkredit-0.3696423114) > 1e-6 {
		t.Errorf("Totalkredit new charge = %.10f, expected 0.3696423114 (rebated)", rawTotalkredit)
	}
	if jyskeResult.Difference.ExtraChargeNewLoan <= 0.3 {
		t.Errorf("Jyske new charge = %.10f, expected an unrebated blended rate", jyskeResult.Difference.ExtraChargeNewLoan)
	}
}

// Realkredit Danmark amortizes monthly unless the quarterly override is
// set; the override also raises the new loan's contribution charge.
func TestCompareRDTermFrequency(t *testing.T) {
	comparator := NewComparator(nil)

	rd := convertUp()
	rd.Institute = rates.InstituteRD
	rd.CustomerKroner = false
	rd.ExtraCharge = 0.6

	monthly, err := comparator.Compare(rd)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}

	rd.RDQuarterlyPayments = true
	quarterly, err := comparator.Compare(rd)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}

	if math.Abs(monthly.OldLoan[0].Interest-20688.4683) > 0.01 {
		t.Errorf("monthly year-1 interest = %.4f, expected 20688.4683", monthly.OldLoan[0].Interest)
	}
	if math.Abs(quarterly.OldLoan[0].Interest-20745.1521) > 0.01 {
		t.Errorf("quarterly year-1 interest = %.4f, expected 20745.1521", quarterly.OldLoan[0].Interest)
	}
	if math.Abs(monthly.Difference.ExtraChargeNewLoan-0.3705581830) > 1e-6 {
		t.Errorf("monthly new charge = %.10f, expected 0.3705581830", monthly.Difference.ExtraChargeNewLoan)
	}
	if math.Abs(quarterly.Difference.ExtraChargeNewLoan-0.4205581830) > 1e-6 {
		t.Errorf("quarterly new charge = %.10f, expected 0.4205581830", quarterly.Difference.ExtraChargeNewLoan)
	}
}

func TestCompareUnknownKeys(t *testing.T) {
	comparator := NewComparator(nil)

	t.Run("Unknown municipality", func(t *testing.T) {
		info := convertUp()
		info.Municipality = "Gotham"
		if _, err := comparator.Compare(info); err == nil {
			t.Error("expected error for unknown municipality, got none")
		}
	})

	t.Run("Unknown institute", func(t *testing.T) {
		info := convertUp()
		info.Institute = "Bear Stearns"
		if _, err := comparator.Compare(info); err == nil {
			t.Error("expected error for unknown institute, got none")
		}
	})
}

// Difference must handle schedules of unequal length: the shorter horizon
// contributes zeros to the running sums and is skipped in per-year
// comparisons.
func TestDifferenceUnequalHorizons(t *testing.T) {
	oldLoan := []annuity.YearState{
		{Principal: 1000, PricePreTax: 100, PricePostTax: 80},
		{Principal: 500, PricePreTax: 100, PricePostTax: 80},
		{},
	}
	newLoan := []annuity.YearState{
		{Principal: 900, PricePreTax: 60, PricePostTax: 50},
		{Principal: 700, PricePreTax: 60, PricePostTax: 50},
		{Principal: 400, PricePreTax: 60, PricePostTax: 50},
		{Principal: 100, PricePreTax: 60, PricePostTax: 50},
		{},
	}

	d := Difference(oldLoan, newLoan, 0.5, 0.4)

	if d.BreakevenPrincipalAfterYears != 2 {
		t.Errorf("BreakevenPrincipalAfterYears = %d, expected 2", d.BreakevenPrincipalAfterYears)
	}
	// New post-tax first exceeds old at the old schedule's terminal row,
	// which holds zeros.
	if d.BreakevenPaymentsPostTaxAfterYears != 3 {
		t.Errorf("BreakevenPaymentsPostTaxAfterYears = %d, expected 3", d.BreakevenPaymentsPostTaxAfterYears)
	}
	if d.TotalPaymentPostTaxOldLoan != 160 {
		t.Errorf("TotalPaymentPostTaxOldLoan = %.2f, expected 160", d.TotalPaymentPostTaxOldLoan)
	}
	// The new schedule's sums keep accumulating beyond the old horizon.
	if d.TotalPaymentPostTaxNewLoan != 200 {
		t.Errorf("TotalPaymentPostTaxNewLoan = %.2f, expected 200", d.TotalPaymentPostTaxNewLoan)
	}
	if d.BreakevenTotalPaymentsPostTaxAfterYears != 4 {
		t.Errorf("BreakevenTotalPaymentsPostTaxAfterYears = %d, expected 4", d.BreakevenTotalPaymentsPostTaxAfterYears)
	}
	if math.Abs(d.ExtraChargeDifference-(-0.1)) > 1e-9 {
		t.Errorf("ExtraChargeDifference = %.4f, expected -0.1", d.ExtraChargeDifference)
	}
}

// If the new loan's principal never exceeds the old loan's, the breakeven
// marker stays at the -1 sentinel.
func TestDifferenceBreakevenSentinel(t *testing.T) {
	oldLoan := []annuity.YearState{
		{Principal: 1000, PricePostTax: 100},
		{Principal: 600, PricePostTax: 100},
		{},
	}
	newLoan := []annuity.YearState{
		{Principal: 800, PricePostTax: 90},
		{Principal: 400, PricePostTax: 90},
		{},
	}

	d := Difference(oldLoan, newLoan, 0.5, 0.5)
	if d.BreakevenPrincipalAfterYears != -1 {
		t.Errorf("BreakevenPrincipalAfterYears = %d, expected -1", d.BreakevenPrincipalAfterYears)
	}
	if d.BreakevenPaymentsPostTaxAfterYears != -1 {
		t.Errorf("BreakevenPaymentsPostTaxAfterYears = %d, expected -1", d.BreakevenPaymentsPostTaxAfterYears)
	}
	if d.BreakevenTotalPaymentsPostTaxAfterYears != -1 {
		t.Errorf("BreakevenTotalPaymentsPostTaxAfterYears = %d, expected -1", d.BreakevenTotalPaymentsPostTaxAfterYears)
	}
}
