// Package rates provides the static Danish rate tables the loan engine
// depends on: per-municipality income tax rates and per-institute
// contribution charge (bidragssats) tier schedules.
package rates

import (
	"fmt"
	"sort"
)

// Municipality identifies a Danish municipality.
type Municipality string

// The 98 Danish municipalities.
const (
	MunicipalityAabenraa          Municipality = "Aabenraa"
	MunicipalityAalborg           Municipality = "Aalborg"
	MunicipalityAarhus            Municipality = "Aarhus"
	MunicipalityAeroe             Municipality = "Ærø"
	MunicipalityAlbertslund       Municipality = "Albertslund"
	MunicipalityAlleroed          Municipality = "Allerød"
	MunicipalityAssens            Municipality = "Assens"
	MunicipalityBallerup          Municipality = "Ballerup"
	MunicipalityBillund           Municipality = "Billund"
	MunicipalityBornholm          Municipality = "Bornholm"
	MunicipalityBroendby          Municipality = "Brøndby"
	MunicipalityBroenderslev      Municipality = "Brønderslev"
	MunicipalityDragoer           Municipality = "Dragør"
	MunicipalityEgedal            Municipality = "Egedal"
	MunicipalityEsbjerg           Municipality = "Esbjerg"
	MunicipalityFaaborgMidtfyn    Municipality = "Faaborg-Midtfyn"
	MunicipalityFanoe             Municipality = "Fanø"
	MunicipalityFavrskov          Municipality = "Favrskov"
	MunicipalityFaxe              Municipality = "Faxe"
	MunicipalityFredensborg       Municipality = "Fredensborg"
	MunicipalityFredericia        Municipality = "Fredericia"
	MunicipalityFrederiksberg     Municipality = "Frederiksberg"
	MunicipalityFrederikshavn     Municipality = "Frederikshavn"
	MunicipalityFrederikssund     Municipality = "Frederikssund"
	MunicipalityFuresoe           Municipality = "Furesø"
	MunicipalityGentofte          Municipality = "Gentofte"
	MunicipalityGladsaxe          Municipality = "Gladsaxe"
	MunicipalityGlostrup          Municipality = "Glostrup"
	MunicipalityGreve             Municipality = "Greve"
	MunicipalityGribskov          Municipality = "Gribskov"
	MunicipalityGuldborgsund      Municipality = "Guldborgsund"
	MunicipalityHaderslev         Municipality = "Haderslev"
	MunicipalityHalsnaes          Municipality = "Halsnæs"
	MunicipalityHedensted         Municipality = "Hedensted"
	MunicipalityHelsingoer        Municipality = "Helsingør"
	MunicipalityHerlev            Municipality = "Herlev"
	MunicipalityHerning           Municipality = "Herning"
	MunicipalityHilleroed         Municipality = "Hillerød"
	MunicipalityHjoerring         Municipality = "Hjørring"
	MunicipalityHoejeTaastrup     Municipality = "Høje-Taastrup"
	MunicipalityHolbaek           Municipality = "Holbæk"
	MunicipalityHolstebro         Municipality = "Holstebro"
	MunicipalityHorsens           Municipality = "Horsens"
	MunicipalityHoersholm         Municipality = "Hørsholm"
	MunicipalityHvidovre          Municipality = "Hvidovre"
	MunicipalityIkastBrande       Municipality = "Ikast-Brande"
	MunicipalityIshoej            Municipality = "Ishøj"
	MunicipalityJammerbugt        Municipality = "Jammerbugt"
	MunicipalityKalundborg        Municipality = "Kalundborg"
	MunicipalityKerteminde        Municipality = "Kerteminde"
	MunicipalityKoebenhavn        Municipality = "København"
	MunicipalityKoege             Municipality = "Køge"
	MunicipalityKolding           Municipality = "Kolding"
	MunicipalityLangeland         Municipality = "Langeland"
	MunicipalityLaesoe            Municipality = "Læsø"
	MunicipalityLejre             Municipality = "Lejre"
	MunicipalityLemvig            Municipality = "Lemvig"
	MunicipalityLolland           Municipality = "Lolland"
	MunicipalityLyngbyTaarbaek    Municipality = "Lyngby-Taarbæk"
	MunicipalityMariagerfjord     Municipality = "Mariagerfjord"
	MunicipalityMiddelfart        Municipality = "Middelfart"
	MunicipalityMorsoe            Municipality = "Morsø"
	MunicipalityNaestved          Municipality = "Næstved"
	MunicipalityNorddjurs         Municipality = "Norddjurs"
	MunicipalityNordfyn           Municipality = "Nordfyn"
	MunicipalityNyborg            Municipality = "Nyborg"
	MunicipalityOdder             Municipality = "Odder"
	MunicipalityOdense            Municipality = "Odense"
	MunicipalityOdsherred         Municipality = "Odsherred"
	MunicipalityRanders           Municipality = "Randers"
	MunicipalityRebild            Municipality = "Rebild"
	MunicipalityRingkoebingSkjern Municipality = "Ringkøbing-Skjern"
	MunicipalityRingsted          Municipality = "Ringsted"
	MunicipalityRoedovre          Municipality = "Rødovre"
	MunicipalityRoskilde          Municipality = "Roskilde"
	MunicipalityRudersdal         Municipality = "Rudersdal"
	MunicipalitySamsoe            Municipality = "Samsø"
	MunicipalitySilkeborg         Municipality = "Silkeborg"
	MunicipalitySkanderborg       Municipality = "Skanderborg"
	MunicipalitySkive             Municipality = "Skive"
	MunicipalitySlagelse          Municipality = "Slagelse"
	MunicipalitySolroed           Municipality = "Solrød"
	MunicipalitySoenderborg       Municipality = "Sønderborg"
	MunicipalitySoroe             Municipality = "Sorø"
	MunicipalityStevns            Municipality = "Stevns"
	MunicipalityStruer            Municipality = "Struer"
	MunicipalitySvendborg         Municipality = "Svendborg"
	MunicipalitySyddjurs          Municipality = "Syddjurs"
	MunicipalityTaarnby           Municipality = "Tårnby"
	MunicipalityThisted           Municipality = "Thisted"
	MunicipalityToender           Municipality = "Tønder"
	MunicipalityVallensbaek       Municipality = "Vallensbæk"
	MunicipalityVarde             Municipality = "Varde"
	MunicipalityVejen             Municipality = "Vejen"
	MunicipalityVejle             Municipality = "Vejle"
	MunicipalityVesthimmerland    Municipality = "Vesthimmerland"
	MunicipalityViborg            Municipality = "Viborg"
	MunicipalityVordingborg       Municipality = "Vordingborg"
)

// MunicipalityTaxRate holds the income tax rates for one municipality, in
// percent. Church tax only applies to members of the national church.
type MunicipalityTaxRate struct {
	TaxPercent       float64
	ChurchTaxPercent float64
}

// municipalityTaxes holds the 2023 municipal and church tax rates.
var municipalityTaxes = map[Municipality]MunicipalityTaxRate{
	MunicipalityAabenraa:          {25.60, 0.95},
	MunicipalityAalborg:           {25.40, 0.98},
	MunicipalityAarhus:            {24.52, 0.74},
	MunicipalityAeroe:             {26.10, 1.05},
	MunicipalityAlbertslund:       {25.60, 0.80},
	MunicipalityAlleroed:          {25.30, 0.58},
	MunicipalityAssens:            {26.10, 0.98},
	MunicipalityBallerup:          {25.50, 0.72},
	MunicipalityBillund:           {24.00, 0.89},
	MunicipalityBornholm:          {26.20, 0.93},
	MunicipalityBroendby:          {24.30, 0.80},
	MunicipalityBroenderslev:      {26.30, 1.09},
	MunicipalityDragoer:           {24.80, 0.61},
	MunicipalityEgedal:            {25.70, 0.76},
	MunicipalityEsbjerg:           {26.10, 0.81},
	MunicipalityFaaborgMidtfyn:    {26.10, 1.05},
	MunicipalityFanoe:             {26.10, 1.05},
	MunicipalityFavrskov:          {25.70, 0.96},
	MunicipalityFaxe:              {26.10, 1.08},
	MunicipalityFredensborg:       {25.30, 0.60},
	MunicipalityFredericia:        {25.50, 0.88},
	MunicipalityFrederiksberg:     {24.57, 0.50},
	MunicipalityFrederikshavn:     {26.20, 1.03},
	MunicipalityFrederikssund:     {25.80, 0.96},
	MunicipalityFuresoe:           {24.88, 0.65},
	MunicipalityGentofte:          {24.17, 0.39},
	MunicipalityGladsaxe:          {23.60, 0.75},
	MunicipalityGlostrup:          {24.60, 0.80},
	MunicipalityGreve:             {24.07, 0.73},
	MunicipalityGribskov:          {25.40, 0.85},
	MunicipalityGuldborgsund:      {25.80, 1.16},
	MunicipalityHaderslev:         {26.30, 0.95},
	MunicipalityHalsnaes:          {25.70, 0.85},
	MunicipalityHedensted:         {25.40, 0.98},
	MunicipalityHelsingoer:        {25.82, 0.62},
	MunicipalityHerlev:            {23.70, 0.75},
	MunicipalityHerning:           {25.40, 0.99},
	MunicipalityHilleroed:         {25.60, 0.69},
	MunicipalityHjoerring:         {26.23, 1.19},
	MunicipalityHoejeTaastrup:     {24.60, 0.80},
	MunicipalityHolbaek:           {25.30, 0.96},
	MunicipalityHolstebro:         {25.50, 1.08},
	MunicipalityHorsens:           {25.29, 0.79},
	MunicipalityHoersholm:         {23.70, 0.62},
	MunicipalityHvidovre:          {25.36, 0.72},
	MunicipalityIkastBrande:       {25.10, 0.97},
	MunicipalityIshoej:            {25.00, 0.90},
	MunicipalityJammerbugt:        {25.70, 1.20},
	MunicipalityKalundborg:        {25.30, 1.01},
	MunicipalityKerteminde:        {26.10, 0.98},
	MunicipalityKoebenhavn:        {23.80, 0.80},
	MunicipalityKoege:             {24.90, 0.87},
	MunicipalityKolding:           {25.50, 0.92},
	MunicipalityLangeland:         {26.30, 1.12},
	MunicipalityLaesoe:            {26.30, 1.30},
	MunicipalityLejre:             {25.31, 1.06},
	MunicipalityLemvig:            {25.20, 1.27},
	MunicipalityLolland:           {26.30, 1.22},
	MunicipalityLyngbyTaarbaek:    {24.38, 0.66},
	MunicipalityMariagerfjord:     {25.90, 1.15},
	MunicipalityMiddelfart:        {25.80, 0.90},
	MunicipalityMorsoe:            {25.80, 1.20},
	MunicipalityNaestved:          {25.00, 0.98},
	MunicipalityNorddjurs:         {26.00, 1.00},
	MunicipalityNordfyn:           {26.10, 1.04},
	MunicipalityNyborg:            {26.30, 1.10},
	MunicipalityOdder:             {25.10, 0.95},
	MunicipalityOdense:            {25.50, 0.68},
	MunicipalityOdsherred:         {26.30, 0.98},
	MunicipalityRanders:           {25.60, 0.89},
	MunicipalityRebild:            {25.95, 1.20},
	MunicipalityRingkoebingSkjern: {25.00, 1.05},
	MunicipalityRingsted:          {26.10, 0.95},
	MunicipalityRoedovre:          {25.70, 0.72},
	MunicipalityRoskilde:          {25.20, 0.84},
	MunicipalityRudersdal:         {23.21, 0.57},
	MunicipalitySamsoe:            {26.00, 1.20},
	MunicipalitySilkeborg:         {25.50, 0.95},
	MunicipalitySkanderborg:       {26.00, 0.86},
	MunicipalitySkive:             {25.50, 1.09},
	MunicipalitySlagelse:          {25.70, 0.96},
	MunicipalitySolroed:           {24.60, 0.88},
	MunicipalitySoenderborg:       {25.70, 0.91},
	MunicipalitySoroe:             {26.30, 0.95},
	MunicipalityStevns:            {26.00, 1.10},
	MunicipalityStruer:            {25.30, 1.20},
	MunicipalitySvendborg:         {26.30, 1.02},
	MunicipalitySyddjurs:          {25.90, 1.00},
	MunicipalityTaarnby:           {23.50, 0.61},
	MunicipalityThisted:           {25.50, 1.27},
	MunicipalityToender:           {25.30, 1.15},
	MunicipalityVallensbaek:       {25.60, 0.72},
	MunicipalityVarde:             {25.10, 0.95},
	MunicipalityVejen:             {25.80, 1.06},
	MunicipalityVejle:             {23.40, 0.89},
	MunicipalityVesthimmerland:    {26.30, 1.18},
	MunicipalityViborg:            {25.50, 0.93},
	MunicipalityVordingborg:       {26.30, 1.02},
}

// MunicipalityTax looks up the tax rates for a municipality. Unknown
// municipalities are a configuration error and fail fast.
func MunicipalityTax(municipality Municipality) (MunicipalityTaxRate, error) {
	rate, ok := municipalityTaxes[municipality]
	if !ok {
		return MunicipalityTaxRate{}, fmt.Errorf("unknown municipality %q", municipality)
	}
	return rate, nil
}

// IsMunicipality reports whether the given name is a known municipality.
func IsMunicipality(name string) bool {
	_, ok := municipalityTaxes[Municipality(name)]
	return ok
}

// Municipalities returns all known municipalities in alphabetical order.
func Municipalities() []Municipality {
	all := make([]Municipality, 0, len(municipalityTaxes))
	for municipality := range municipalityTaxes {
		all = append(all, municipality)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}
