package catalog

import (
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"dealership/internal/domain"
)

// Query string parameter names shared by the catalog page, the hero search
// and the filter sidebar.
const (
	ParamQ            = "q"
	ParamType         = "tipo"
	ParamTipologia    = "tipologia"
	ParamCondition    = "condicion"
	ParamBrand        = "marca"
	ParamModel        = "modelo"
	ParamVersion      = "version"
	ParamCurrency     = "moneda"
	ParamYear         = "anio" // legacy single-year filter
	ParamYearMin      = "anioMin"
	ParamYearMax      = "anioMax"
	ParamPriceMin     = "precioMin"
	ParamPriceMax     = "precioMax"
	ParamKmMin        = "kmMin"
	ParamKmMax        = "kmMax"
	ParamTransmission = "transmision"
	ParamFuel         = "combustible"
	ParamColor        = "color"
	ParamDoors        = "puertas"
	ParamExtras       = "extras"
	ParamSort         = "sort"
	ParamPage         = "page"
	ParamPerPage      = "perPage"
)

const (
	DefaultPerPage = 12
	MaxQueryLen    = 80
)

var PerPageOptions = []int{12, 18, 24}

type Sort string

const (
	SortRecommended Sort = "recomendados"
	SortPriceAsc    Sort = "precio_asc"
	SortPriceDesc   Sort = "precio_desc"
	SortYearDesc    Sort = "anio_desc"
	SortYearAsc     Sort = "anio_asc"
	SortKmAsc       Sort = "km_asc"
	SortKmDesc      Sort = "km_desc"
)

var Sorts = []Sort{SortRecommended, SortPriceAsc, SortPriceDesc, SortYearDesc, SortYearAsc, SortKmAsc, SortKmDesc}

// Params is a normalized catalog search. Unset filters are zero values (nil
// for numeric bounds), so a Params built by Normalize never carries raw or
// out-of-range input.
type Params struct {
	Q            string             `json:"q,omitempty"`
	Type         domain.VehicleType `json:"tipo,omitempty"`
	Tipologia    domain.BodyStyle   `json:"tipologia,omitempty"`
	Condition    domain.Condition   `json:"condicion,omitempty"`
	Brand        string             `json:"marca,omitempty"`
	Model        string             `json:"modelo,omitempty"`
	Version      string             `json:"version,omitempty"`
	Currency     domain.Currency    `json:"moneda,omitempty"`
	YearMin      *int               `json:"anioMin,omitempty"`
	YearMax      *int               `json:"anioMax,omitempty"`
	PriceMin     *int               `json:"precioMin,omitempty"`
	PriceMax     *int               `json:"precioMax,omitempty"`
	KmMin        *int               `json:"kmMin,omitempty"`
	KmMax        *int               `json:"kmMax,omitempty"`
	Transmission string             `json:"transmision,omitempty"`
	FuelType     string             `json:"combustible,omitempty"`
	Color        string             `json:"color,omitempty"`
	DoorCount    *int               `json:"puertas,omitempty"`
	Extras       []string           `json:"extras,omitempty"`
	Sort         Sort               `json:"sort"`
	Page         int                `json:"page"`
	PerPage      int                `json:"perPage"`
}

func DefaultParams() Params {
	return Params{Sort: SortRecommended, Page: 1, PerPage: DefaultPerPage}
}

// Normalize turns an untrusted query string into Params. It never fails:
// unknown keys are ignored and invalid values fall back to "unset" or to the
// default.
func Normalize(raw url.Values) Params {
	get := func(key string) string {
		if vals := raw[key]; len(vals) > 0 {
			return strings.TrimSpace(vals[0])
		}
		return ""
	}

	p := DefaultParams()
	p.Q = truncate(get(ParamQ), MaxQueryLen)
	p.Type = oneOf(get(ParamType), domain.VehicleTypes)
	p.Tipologia = oneOf(get(ParamTipologia), domain.BodyStyles)
	p.Condition = oneOf(get(ParamCondition), domain.Conditions)
	p.Currency = oneOf(get(ParamCurrency), domain.Currencies)
	p.Brand = get(ParamBrand)
	p.Model = get(ParamModel)
	p.Version = get(ParamVersion)
	p.Transmission = get(ParamTransmission)
	p.FuelType = get(ParamFuel)
	p.Color = get(ParamColor)
	p.Extras = splitTags(get(ParamExtras))

	p.YearMin = parseCount(get(ParamYearMin))
	p.YearMax = parseCount(get(ParamYearMax))
	if p.YearMin == nil && p.YearMax == nil {
		if y := parseCount(get(ParamYear)); y != nil {
			lo, hi := *y, *y
			p.YearMin, p.YearMax = &lo, &hi
		}
	}
	p.YearMin, p.YearMax = ordered(p.YearMin, p.YearMax)
	p.PriceMin, p.PriceMax = ordered(parseCount(get(ParamPriceMin)), parseCount(get(ParamPriceMax)))
	p.KmMin, p.KmMax = ordered(parseCount(get(ParamKmMin)), parseCount(get(ParamKmMax)))

	if n := parseCount(get(ParamDoors)); n != nil && *n > 0 {
		p.DoorCount = n
	}
	if s := oneOf(get(ParamSort), Sorts); s != "" {
		p.Sort = s
	}
	if n := parseCount(get(ParamPage)); n != nil && *n >= 1 {
		p.Page = *n
	}
	if n := parseCount(get(ParamPerPage)); n != nil && slices.Contains(PerPageOptions, *n) {
		p.PerPage = *n
	}
	return p
}

// NormalizeMap is Normalize for callers holding a flat key/value map.
func NormalizeMap(m map[string]string) Params {
	raw := make(url.Values, len(m))
	for k, v := range m {
		raw.Set(k, v)
	}
	return Normalize(raw)
}

// HasFilters reports whether any filter (anything but sort and paging) is set.
func (p Params) HasFilters() bool {
	q := p
	q.Sort, q.Page, q.PerPage = SortRecommended, 1, DefaultPerPage
	return len(q.Values(false)) > 0
}

// PriceCurrency is the currency price bounds and price sorting refer to.
func (p Params) PriceCurrency() domain.Currency {
	if p.Currency == domain.CurrencyDollars {
		return domain.CurrencyDollars
	}
	return domain.CurrencyPesos
}

func oneOf[T ~string](s string, allowed []T) T {
	s = strings.ToLower(s)
	for _, a := range allowed {
		if string(a) == s {
			return a
		}
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}

var (
	groupedInt = regexp.MustCompile(`^\d{1,3}([.,]\d{3})+$`)
	leadingInt = regexp.MustCompile(`^[+-]?\d+`)
)

// parseCount reads a non-negative integer the lenient way: "18.000.000" and
// "18,000,000" are grouped thousands, "2020abc" is 2020, "1500.75" is 1500.
// Anything unreadable or negative is nil.
func parseCount(s string) *int {
	if s == "" {
		return nil
	}
	if groupedInt.MatchString(s) {
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
	} else {
		s = leadingInt.FindString(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func ordered(lo, hi *int) (*int, *int) {
	if lo != nil && hi != nil && *lo > *hi {
		return hi, lo
	}
	return lo, hi
}

func splitTags(s string) []string {
	var tags []string
	seen := map[string]bool{}
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		k := NormalizeKey(t)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		tags = append(tags, t)
	}
	return tags
}
