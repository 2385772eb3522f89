package charges

import (
	"math"
	"testing"

	"github.com/avjensen/realkredit-compare/pkg/rates"
)

func TestContributionCharge(t *testing.T) {
	tests := []struct {
		name           string
		principal      float64
		appraisedValue float64
		institute      rates.Institute
		instalmentFree bool
		quarterly      bool
		expected       float64
	}{
		{
			name:           "Totalkredit mid second tier",
			principal:      500000,
			appraisedValue: 1000000,
			institute:      rates.InstituteTotalkredit,
			// (0.4/0.5)*0.45 + (0.1/0.5)*0.85
			expected: 0.53,
		},
		{
			name:           "Totalkredit at top tier ceiling",
			principal:      800000,
			appraisedValue: 1000000,
			institute:      rates.InstituteTotalkredit,
			expected:       0.7375,
		},
		{
			name:           "Totalkredit beyond top tier keeps top rate on the excess",
			principal:      1000000,
			appraisedValue: 1000000,
			institute:      rates.InstituteTotalkredit,
			expected:       0.83,
		},
		{
			name:           "Totalkredit instalment-free rates",
			principal:      500000,
			appraisedValue: 1000000,
			institute:      rates.InstituteTotalkredit,
			instalmentFree: true,
			expected:       0.67,
		},
		{
			name:           "Jyske first tier only",
			principal:      300000,
			appraisedValue: 1000000,
			institute:      rates.InstituteJyske,
			expected:       0.325,
		},
		{
			name:           "Nordea instalment-free into third tier",
			principal:      700000,
			appraisedValue: 1000000,
			institute:      rates.InstituteNordea,
			instalmentFree: true,
			expected:       0.8821428571,
		},
		{
			name:           "RD monthly",
			principal:      500000,
			appraisedValue: 1000000,
			institute:      rates.InstituteRD,
			expected:       0.3848,
		},
		{
			name:           "RD quarterly surcharge",
			principal:      500000,
			appraisedValue: 1000000,
			institute:      rates.InstituteRD,
			quarterly:      true,
			expected:       0.4348,
		},
		{
			name:           "Quarterly flag is a no-op for Totalkredit",
			principal:      500000,
			appraisedValue: 1000000,
			institute:      rates.InstituteTotalkredit,
			quarterly:      true,
			expected:       0.53,
		},
		{
			name:           "Zero principal",
			principal:      0,
			appraisedValue: 1000000,
			institute:      rates.InstituteTotalkredit,
			expected:       0,
		},
		{
			name:           "Negative principal",
			principal:      -100000,
			appraisedValue: 1000000,
			institute:      rates.InstituteTotalkredit,
			expected:       0,
		},
		{
			name:           "Zero appraised value",
			principal:      500000,
			appraisedValue: 0,
			institute:      rates.InstituteTotalkredit,
			expected:       0,
		},
		{
			name:           "Negative appraised value",
			principal:      500000,
			appraisedValue: -1,
			institute:      rates.InstituteTotalkredit,
			expected:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ContributionCharge(tt.principal, tt.appraisedValue, tt.institute, tt.instalmentFree, tt.quarterly)
			if err != nil {
				t.Fatalf("ContributionCharge() unexpected error: %v", err)
			}
			if math.IsNaN(result) || math.IsInf(result, 0) {
				t.Fatalf("ContributionCharge() = %v, expected finite value", result)
			}
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("ContributionCharge() = %.10f, expected %.10f", result, tt.expected)
			}
		})
	}
}

func TestContributionChargeUnknownInstitute(t *testing.T) {
	if _, err := ContributionCharge(500000, 1000000, rates.Institute("Northern Rock"), false, false); err == nil {
		t.Error("expected error for unknown institute, got none")
	}
}

// The blended charge must be continuous at tier boundaries: nudging the LTV
// across a threshold must not produce a jump.
func TestContributionChargeContinuousAtTierBoundaries(t *testing.T) {
	const appraisedValue = 1000000.0
	for _, boundary := range []float64{0.4, 0.6, 0.8} {
		below, err := ContributionCharge((boundary-1e-7)*appraisedValue, appraisedValue, rates.InstituteTotalkredit, false, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		above, err := ContributionCharge((boundary+1e-7)*appraisedValue, appraisedValue, rates.InstituteTotalkredit, false, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(above-below) > 1e-5 {
			t.Errorf("discontinuity at LTV %.1f: below %.10f, above %.10f", boundary, below, above)
		}
	}
}
