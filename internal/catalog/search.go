package catalog

import (
	"cmp"
	"slices"
	"strings"

	"dealership/internal/domain"
)

// Result is one page of a catalog search. Applied echoes the params that
// produced it, with Page clamped to [1, TotalPages]; next/prev links must
// be built from Applied, not from the request.
type Result struct {
	Items      []domain.Vehicle `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalPages int              `json:"totalPages"`
	Applied    Params           `json:"appliedParams"`
}

func (r Result) HasPrev() bool { return r.Page > 1 }
func (r Result) HasNext() bool { return r.Page < r.TotalPages }
func (r Result) PrevPage() int { return max(r.Page-1, 1) }
func (r Result) NextPage() int { return min(r.Page+1, r.TotalPages) }

// Search filters, sorts and paginates vehicles. It does not modify the
// input slice and always succeeds: an over-constrained query is an empty
// page, an out-of-range page is the last one.
func Search(p Params, vehicles []domain.Vehicle) Result {
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	matched := Filter(p, vehicles)
	SortVehicles(matched, p.Sort, p.Currency)

	total := len(matched)
	totalPages := max(1, (total+p.PerPage-1)/p.PerPage)
	p.Page = min(max(p.Page, 1), totalPages)

	start := (p.Page - 1) * p.PerPage
	end := min(start+p.PerPage, total)
	items := make([]domain.Vehicle, 0, end-start)
	items = append(items, matched[start:end]...)

	return Result{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: totalPages,
		Applied:    p,
	}
}

type predicate func(v *domain.Vehicle) bool

// Filter returns, in store order, the vehicles passing every filter in p.
func Filter(p Params, vehicles []domain.Vehicle) []domain.Vehicle {
	preds := predicates(p)
	out := make([]domain.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		if matchesAll(v, preds) {
			out = append(out, *v)
		}
	}
	return out
}

func matchesAll(v *domain.Vehicle, preds []predicate) bool {
	for _, ok := range preds {
		if !ok(v) {
			return false
		}
	}
	return true
}

// predicates builds one check per filter that is actually set, so an unset
// filter costs nothing and never excludes anything.
func predicates(p Params) []predicate {
	var preds []predicate
	add := func(f predicate) { preds = append(preds, f) }

	switch p.Currency {
	case domain.CurrencyDollars:
		add(func(v *domain.Vehicle) bool { return v.PriceUsd > 0 })
	case domain.CurrencyPesos:
		add(func(v *domain.Vehicle) bool { return v.PriceArs > 0 })
	}

	if p.Type != "" {
		add(func(v *domain.Vehicle) bool { return v.Type == p.Type })
	}
	if p.Tipologia != "" {
		add(func(v *domain.Vehicle) bool { return v.Tipologia == p.Tipologia })
	}
	if p.Condition != "" {
		add(func(v *domain.Vehicle) bool { return v.Condition == p.Condition })
	}

	for _, f := range []struct {
		want  string
		field func(v *domain.Vehicle) string
	}{
		{p.Brand, func(v *domain.Vehicle) string { return v.Brand }},
		{p.Model, func(v *domain.Vehicle) string { return v.Model }},
		{p.Version, func(v *domain.Vehicle) string { return v.Version }},
		{p.Transmission, func(v *domain.Vehicle) string { return v.Transmission }},
		{p.FuelType, func(v *domain.Vehicle) string { return v.FuelType }},
	} {
		if f.want == "" {
			continue
		}
		want, field := NormalizeKey(f.want), f.field
		add(func(v *domain.Vehicle) bool { return NormalizeKey(field(v)) == want })
	}

	if p.YearMin != nil || p.YearMax != nil {
		add(func(v *domain.Vehicle) bool { return within(v.Year, p.YearMin, p.YearMax) })
	}
	if p.KmMin != nil || p.KmMax != nil {
		add(func(v *domain.Vehicle) bool { return within(v.OdometerKm, p.KmMin, p.KmMax) })
	}
	if p.PriceMin != nil || p.PriceMax != nil {
		cur := p.PriceCurrency()
		add(func(v *domain.Vehicle) bool { return within(v.Price(cur), p.PriceMin, p.PriceMax) })
	}

	if p.Color != "" {
		add(func(v *domain.Vehicle) bool { return v.Color == "" || containsFold(v.Color, p.Color) })
	}
	if p.DoorCount != nil {
		add(func(v *domain.Vehicle) bool { return v.DoorCount == nil || *v.DoorCount == *p.DoorCount })
	}
	if len(p.Extras) > 0 {
		add(func(v *domain.Vehicle) bool { return hasExtras(v.Extras, p.Extras) })
	}
	if p.Q != "" {
		q := NormalizeKey(p.Q)
		add(func(v *domain.Vehicle) bool {
			hay := NormalizeKey(strings.Join([]string{v.Brand, v.Model, v.Version, v.Slug}, " "))
			return strings.Contains(hay, q)
		})
	}
	return preds
}

func within(n int, lo, hi *int) bool {
	if lo != nil && n < *lo {
		return false
	}
	if hi != nil && n > *hi {
		return false
	}
	return true
}

// hasExtras: every wanted tag must appear, as a substring, in at least one
// of the vehicle's own extras.
func hasExtras(have, want []string) bool {
	for _, tag := range want {
		if !slices.ContainsFunc(have, func(e string) bool { return containsFold(e, tag) }) {
			return false
		}
	}
	return true
}

// SortVehicles orders vehicles in place. The sort is stable: fully tied
// vehicles keep their store order.
func SortVehicles(vehicles []domain.Vehicle, s Sort, cur domain.Currency) {
	slices.SortStableFunc(vehicles, compareFor(s, cur))
}

func compareFor(s Sort, cur domain.Currency) func(a, b domain.Vehicle) int {
	switch s {
	case SortPriceAsc:
		return func(a, b domain.Vehicle) int { return cmp.Compare(a.Price(cur), b.Price(cur)) }
	case SortPriceDesc:
		return func(a, b domain.Vehicle) int { return cmp.Compare(b.Price(cur), a.Price(cur)) }
	case SortYearDesc:
		return func(a, b domain.Vehicle) int {
			return cmp.Or(cmp.Compare(b.Year, a.Year), cmp.Compare(a.OdometerKm, b.OdometerKm))
		}
	case SortYearAsc:
		return func(a, b domain.Vehicle) int {
			return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.OdometerKm, b.OdometerKm))
		}
	case SortKmAsc:
		return func(a, b domain.Vehicle) int {
			return cmp.Or(cmp.Compare(a.OdometerKm, b.OdometerKm), cmp.Compare(b.Year, a.Year))
		}
	case SortKmDesc:
		return func(a, b domain.Vehicle) int {
			return cmp.Or(cmp.Compare(b.OdometerKm, a.OdometerKm), cmp.Compare(b.Year, a.Year))
		}
	default:
		return func(a, b domain.Vehicle) int {
			return cmp.Or(
				compareFeatured(a, b),
				cmp.Compare(b.Year, a.Year),
				cmp.Compare(a.OdometerKm, b.OdometerKm),
			)
		}
	}
}

func compareFeatured(a, b domain.Vehicle) int {
	switch {
	case a.IsFeatured == b.IsFeatured:
		return 0
	case a.IsFeatured:
		return -1
	}
	return 1
}
