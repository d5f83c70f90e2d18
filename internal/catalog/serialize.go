package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Values is the inverse of Normalize: it emits only what differs from the
// defaults, unless includeDefaults is set (canonical "return to this exact
// search" links). Normalize(p.Values(b)) == p for any normalized p.
func (p Params) Values(includeDefaults bool) url.Values {
	v := url.Values{}
	setStr := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	setInt := func(key string, n *int) {
		if n != nil {
			v.Set(key, strconv.Itoa(*n))
		}
	}

	setStr(ParamQ, p.Q)
	setStr(ParamType, string(p.Type))
	setStr(ParamTipologia, string(p.Tipologia))
	setStr(ParamCondition, string(p.Condition))
	setStr(ParamBrand, p.Brand)
	setStr(ParamModel, p.Model)
	setStr(ParamVersion, p.Version)
	setStr(ParamCurrency, string(p.Currency))
	setInt(ParamYearMin, p.YearMin)
	setInt(ParamYearMax, p.YearMax)
	setInt(ParamPriceMin, p.PriceMin)
	setInt(ParamPriceMax, p.PriceMax)
	setInt(ParamKmMin, p.KmMin)
	setInt(ParamKmMax, p.KmMax)
	setStr(ParamTransmission, p.Transmission)
	setStr(ParamFuel, p.FuelType)
	setStr(ParamColor, p.Color)
	setInt(ParamDoors, p.DoorCount)
	setStr(ParamExtras, strings.Join(p.Extras, ","))

	if includeDefaults || p.Sort != SortRecommended {
		setStr(ParamSort, string(p.Sort))
	}
	if includeDefaults || p.Page != 1 {
		v.Set(ParamPage, strconv.Itoa(p.Page))
	}
	if includeDefaults || p.PerPage != DefaultPerPage {
		v.Set(ParamPerPage, strconv.Itoa(p.PerPage))
	}
	return v
}

// Query encodes Values with keys in sorted order, so equal searches always
// produce the same string.
func (p Params) Query(includeDefaults bool) string {
	return p.Values(includeDefaults).Encode()
}

// PageQuery is the query string for the same search on another page.
func PageQuery(p Params, page int) string {
	p.Page = page
	return p.Query(false)
}

// Chip is one active filter as shown above the results, with the query that
// drops it.
type Chip struct {
	Param       string `json:"param"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	RemoveQuery string `json:"removeQuery"`
}

var chipLabels = map[string]string{
	ParamQ:            "Búsqueda",
	ParamType:         "Tipo",
	ParamTipologia:    "Tipología",
	ParamCondition:    "Condición",
	ParamBrand:        "Marca",
	ParamModel:        "Modelo",
	ParamVersion:      "Versión",
	ParamCurrency:     "Moneda",
	ParamYearMin:      "Año desde",
	ParamYearMax:      "Año hasta",
	ParamPriceMin:     "Precio desde",
	ParamPriceMax:     "Precio hasta",
	ParamKmMin:        "Km desde",
	ParamKmMax:        "Km hasta",
	ParamTransmission: "Transmisión",
	ParamFuel:         "Combustible",
	ParamColor:        "Color",
	ParamDoors:        "Puertas",
	ParamExtras:       "Equipamiento",
}

var chipOrder = []string{
	ParamQ, ParamType, ParamTipologia, ParamCondition, ParamBrand, ParamModel, ParamVersion,
	ParamCurrency, ParamYearMin, ParamYearMax, ParamPriceMin, ParamPriceMax, ParamKmMin, ParamKmMax,
	ParamTransmission, ParamFuel, ParamColor, ParamDoors, ParamExtras,
}

// Chips lists the active filters. Removing a filter goes back to page 1,
// and removing a brand or model also drops the filters that cascade from it.
func Chips(p Params) []Chip {
	vals := p.Values(false)
	var chips []Chip
	for _, key := range chipOrder {
		val := vals.Get(key)
		if val == "" {
			continue
		}
		chips = append(chips, Chip{
			Param:       key,
			Label:       chipLabels[key],
			Value:       val,
			RemoveQuery: Without(p, key).Query(false),
		})
	}
	return chips
}

// Without clears one filter parameter and resets paging.
func Without(p Params, param string) Params {
	switch param {
	case ParamQ:
		p.Q = ""
	case ParamType:
		p.Type = ""
	case ParamTipologia:
		p.Tipologia = ""
	case ParamCondition:
		p.Condition = ""
	case ParamBrand:
		p.Brand, p.Model, p.Version = "", "", ""
	case ParamModel:
		p.Model, p.Version = "", ""
	case ParamVersion:
		p.Version = ""
	case ParamCurrency:
		p.Currency = ""
	case ParamYearMin:
		p.YearMin = nil
	case ParamYearMax:
		p.YearMax = nil
	case ParamPriceMin:
		p.PriceMin = nil
	case ParamPriceMax:
		p.PriceMax = nil
	case ParamKmMin:
		p.KmMin = nil
	case ParamKmMax:
		p.KmMax = nil
	case ParamTransmission:
		p.Transmission = ""
	case ParamFuel:
		p.FuelType = ""
	case ParamColor:
		p.Color = ""
	case ParamDoors:
		p.DoorCount = nil
	case ParamExtras:
		p.Extras = nil
	}
	p.Page = 1
	return p
}
