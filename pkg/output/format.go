// Package output provides utilities for formatting and displaying
// comparison results. Rounding to whole kroner happens here; the engine
// itself never rounds.
package output

import (
	"fmt"

	"github.com/avjensen/realkredit-compare/internal/compare"
	"github.com/avjensen/realkredit-compare/pkg/annuity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *compare.TotalCalculation) {
	p := message.NewPrinter(language.Danish)

	printSchedule(p, "current loan", result.OldLoan)
	printSchedule(p, "new loan", result.NewLoan)

	d := result.Difference
	fmt.Printf("--- Difference (new - old) ---\n")
	_, _ = p.Printf("Principal          | %.0f kr.\n", d.PrincipalDifference)
	_, _ = p.Printf("First-year pre-tax | %.0f kr.\n", d.PricePreTaxDifference)
	_, _ = p.Printf("First-year post-tax| %.0f kr.\n", d.PricePostTaxDifference)
	_, _ = p.Printf("First-year instalment | %.0f kr.\n", d.InstalmentDifference)
	_, _ = p.Printf("Contribution charge   | %.4f %%-points\n", d.ExtraChargeDifference)
	_, _ = p.Printf("Total pre-tax payments  | %.0f kr.\n", d.TotalPaymentPreTaxDifference)
	_, _ = p.Printf("Total post-tax payments | %.0f kr.\n", d.TotalPaymentPostTaxDifference)
	fmt.Printf("Breakeven principal after years          | %s\n", formatBreakeven(d.BreakevenPrincipalAfterYears))
	fmt.Printf("Breakeven post-tax payment after years   | %s\n", formatBreakeven(d.BreakevenPaymentsPostTaxAfterYears))
	fmt.Printf("Breakeven total post-tax after years     | %s\n", formatBreakeven(d.BreakevenTotalPaymentsPostTaxAfterYears))
}

func printSchedule(p *message.Printer, name string, schedule []annuity.YearState) {
	fmt.Printf("--- Schedule for %s ---\n", name)
	fmt.Printf("Year | Principal | Interest | Instalment | Charge | Pre-tax | Deduction | Post-tax\n")
	fmt.Printf("____ | _________ | ________ | __________ | ______ | _______ | _________ | ________\n")
	for i, year := range schedule {
		_, _ = p.Printf("%4d | %.0f | %.0f | %.0f | %.0f | %.0f | %.0f | %.0f\n",
			i+1, year.Principal, year.Interest, year.Instalment, year.ExtraCharge,
			year.PricePreTax, year.TaxDeduction, year.PricePostTax)
	}
	fmt.Printf("\n")
}

// CsvFormat outputs in comma-separated value format. Both schedules share
// the same horizon within one calculation, so rows are aligned by year.
func CsvFormat(result *compare.TotalCalculation) {
	fmt.Printf(`"year"`)
	for _, name := range []string{"old", "new"} {
		fmt.Printf(`,"principal (%[1]s)","interest (%[1]s)","instalment (%[1]s)","charge (%[1]s)","pre-tax (%[1]s)","deduction (%[1]s)","post-tax (%[1]s)"`, name)
	}
	fmt.Printf("\n")

	maxYears := len(result.OldLoan)
	if len(result.NewLoan) > maxYears {
		maxYears = len(result.NewLoan)
	}
	for i := 0; i < maxYears; i++ {
		fmt.Printf(`"%d"`, i+1)
		for _, schedule := range [][]annuity.YearState{result.OldLoan, result.NewLoan} {
			var year annuity.YearState
			if i < len(schedule) {
				year = schedule[i]
			}
			fmt.Printf(`,"%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
				year.Principal, year.Interest, year.Instalment, year.ExtraCharge,
				year.PricePreTax, year.TaxDeduction, year.PricePostTax)
		}
		fmt.Printf("\n")
	}
}

func formatBreakeven(years int) string {
	if years < 0 {
		return "never"
	}
	return fmt.Sprintf("%d", years)
}
