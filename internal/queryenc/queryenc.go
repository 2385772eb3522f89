// Package queryenc serializes loan input to and from URL query parameters
// so that calculations can be shared as links. Every AllLoanInfo field has
// a canonical external key name; the engine itself is agnostic to this
// mapping.
package queryenc

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/avjensen/realkredit-compare/internal/compare"
	"github.com/avjensen/realkredit-compare/pkg/rates"
)

// Canonical query parameter names for AllLoanInfo fields.
const (
	ParamPrincipal               = "principal"
	ParamYearsLeft               = "terms_left"
	ParamExtraCharge             = "extra_charge"
	ParamInterest                = "interest"
	ParamInstalmentFreeYearsLeft = "instalment_free_years_left"
	ParamEstimatedPrice          = "estimated_price"
	ParamOtherInterestPerYear    = "other_interest_per_year"
	ParamCurrentPrice            = "current_price"
	ParamSingle                  = "single"
	ParamChurchTax               = "church_tax"
	ParamNewLoanInstalmentFree   = "new_loan_instalment_free"
	ParamMunicipality            = "municipality"
	ParamInstitute               = "institute"
	ParamCustomerKroner          = "customer_kroner"
	ParamFeesNewLoan             = "fees_new_loan"
	ParamInterestNewLoan         = "interest_new_loan"
	ParamCurrentPriceNewLoan     = "current_price_new_loan"
	ParamRDQuarterlyPayments     = "rd_quarterly_payments"
)

// Encode serializes the loan input as URL query parameters.
func Encode(info compare.AllLoanInfo) url.Values {
	values := url.Values{}
	values.Set(ParamPrincipal, formatFloat(info.Principal))
	values.Set(ParamYearsLeft, strconv.Itoa(info.YearsLeft))
	values.Set(ParamExtraCharge, formatFloat(info.ExtraCharge))
	values.Set(ParamInterest, formatFloat(info.Interest))
	values.Set(ParamInstalmentFreeYearsLeft, strconv.Itoa(info.InstalmentFreeYearsLeft))
	values.Set(ParamEstimatedPrice, formatFloat(info.EstimatedPrice))
	values.Set(ParamOtherInterestPerYear, formatFloat(info.OtherInterestPerYear))
	values.Set(ParamCurrentPrice, formatFloat(info.CurrentPrice))
	values.Set(ParamSingle, strconv.FormatBool(info.Single))
	values.Set(ParamChurchTax, strconv.FormatBool(info.ChurchTax))
	values.Set(ParamNewLoanInstalmentFree, strconv.FormatBool(info.NewLoanInstalmentFree))
	values.Set(ParamMunicipality, string(info.Municipality))
	values.Set(ParamInstitute, string(info.Institute))
	values.Set(ParamCustomerKroner, strconv.FormatBool(info.CustomerKroner))
	values.Set(ParamFeesNewLoan, formatFloat(info.FeesNewLoan))
	values.Set(ParamInterestNewLoan, formatFloat(info.InterestNewLoan))
	values.Set(ParamCurrentPriceNewLoan, formatFloat(info.CurrentPriceNewLoan))
	values.Set(ParamRDQuarterlyPayments, strconv.FormatBool(info.RDQuarterlyPayments))
	return values
}

// Decode parses loan input from URL query parameters. Missing parameters
// leave the corresponding field at its zero value; malformed values and
// unknown enum names yield an error.
func Decode(values url.Values) (compare.AllLoanInfo, error) {
	var info compare.AllLoanInfo
	var err error

	if info.Principal, err = parseFloat(values, ParamPrincipal); err != nil {
		return info, err
	}
	if info.YearsLeft, err = parseInt(values, ParamYearsLeft); err != nil {
		return info, err
	}
	if info.ExtraCharge, err = parseFloat(values, ParamExtraCharge); err != nil {
		return info, err
	}
	if info.Interest, err = parseFloat(values, ParamInterest); err != nil {
		return info, err
	}
	if info.InstalmentFreeYearsLeft, err = parseInt(values, ParamInstalmentFreeYearsLeft); err != nil {
		return info, err
	}
	if info.EstimatedPrice, err = parseFloat(values, ParamEstimatedPrice); err != nil {
		return info, err
	}
	if info.OtherInterestPerYear, err = parseFloat(values, ParamOtherInterestPerYear); err != nil {
		return info, err
	}
	if info.CurrentPrice, err = parseFloat(values, ParamCurrentPrice); err != nil {
		return info, err
	}
	if info.Single, err = parseBool(values, ParamSingle); err != nil {
		return info, err
	}
	if info.ChurchTax, err = parseBool(values, ParamChurchTax); err != nil {
		return info, err
	}
	if info.NewLoanInstalmentFree, err = parseBool(values, ParamNewLoanInstalmentFree); err != nil {
		return info, err
	}
	if info.CustomerKroner, err = parseBool(values, ParamCustomerKroner); err != nil {
		return info, err
	}
	if info.FeesNewLoan, err = parseFloat(values, ParamFeesNewLoan); err != nil {
		return info, err
	}
	if info.InterestNewLoan, err = parseFloat(values, ParamInterestNewLoan); err != nil {
		return info, err
	}
	if info.CurrentPriceNewLoan, err = parseFloat(values, ParamCurrentPriceNewLoan); err != nil {
		return info, err
	}
	if info.RDQuarterlyPayments, err = parseBool(values, ParamRDQuarterlyPayments); err != nil {
		return info, err
	}

	if name := values.Get(ParamMunicipality); name != "" {
		if !rates.IsMunicipality(name) {
			return info, fmt.Errorf("unknown municipality %q in parameter %s", name, ParamMunicipality)
		}
		info.Municipality = rates.Municipality(name)
	}
	if name := values.Get(ParamInstitute); name != "" {
		if !rates.IsInstitute(name) {
			return info, fmt.Errorf("unknown lending institute %q in parameter %s", name, ParamInstitute)
		}
		info.Institute = rates.Institute(name)
	}

	return info, nil
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func parseFloat(values url.Values, key string) (float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for parameter %s: %w", raw, key, err)
	}
	return val, nil
}

func parseInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for parameter %s: %w", raw, key, err)
	}
	return val, nil
}

func parseBool(values url.Values, key string) (bool, error) {
	raw := values.Get(key)
	if raw == "" {
		return false, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid value %q for parameter %s: %w", raw, key, err)
	}
	return val, nil
}
