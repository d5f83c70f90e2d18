package catalog

import (
	"slices"
	"strings"
	"time"

	"dealership/internal/domain"
)

// MinYear is the lower bound of the year slider when no vehicle has a year.
const MinYear = 1980

var now = time.Now

type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Metadata holds the option lists of the filter UI. Models is keyed by the
// normalized brand, Versions by VersionKey(brand, model).
type Metadata struct {
	Brands        []string            `json:"brands"`
	Models        map[string][]string `json:"models"`
	Versions      map[string][]string `json:"versions"`
	Transmissions []string            `json:"transmissions"`
	FuelTypes     []string            `json:"fuelTypes"`
	Colors        []string            `json:"colors"`
	DoorCounts    []int               `json:"doorCounts"`
	Extras        []string            `json:"extras"`
	Years         Range               `json:"years"`
	PriceArs      Range               `json:"priceArs"`
	PriceUsd      Range               `json:"priceUsd"`
	Km            Range               `json:"km"`
}

func VersionKey(brand, model string) string {
	return NormalizeKey(brand) + "|" + NormalizeKey(model)
}

// ModelsFor lists the models of a brand, matched by normalized key.
func (m Metadata) ModelsFor(brand string) []string {
	return m.Models[NormalizeKey(brand)]
}

func (m Metadata) VersionsFor(brand, model string) []string {
	return m.Versions[VersionKey(brand, model)]
}

// distinct collects values deduplicated by NormalizeKey, keeping the first
// spelling seen.
type distinct struct {
	seen   map[string]bool
	values []string
}

func newDistinct() *distinct { return &distinct{seen: map[string]bool{}} }

func (d *distinct) add(s string) {
	k := NormalizeKey(s)
	if k == "" || d.seen[k] {
		return
	}
	d.seen[k] = true
	d.values = append(d.values, strings.TrimSpace(s))
}

func (d *distinct) sorted() []string {
	out := slices.Clone(d.values)
	if out == nil {
		out = []string{}
	}
	sortDisplay(out)
	return out
}

// BuildMetadata derives the filter options from the store. It reads the
// vehicles in order and has no other input besides the clock (for the
// empty-store year range).
func BuildMetadata(vehicles []domain.Vehicle) Metadata {
	brands := newDistinct()
	models := map[string]*distinct{}
	versions := map[string]*distinct{}
	transmissions, fuels, colors, extras := newDistinct(), newDistinct(), newDistinct(), newDistinct()
	doors := map[int]bool{}

	for i := range vehicles {
		v := &vehicles[i]
		brands.add(v.Brand)
		if bk := NormalizeKey(v.Brand); bk != "" {
			if models[bk] == nil {
				models[bk] = newDistinct()
			}
			models[bk].add(v.Model)
			if NormalizeKey(v.Model) != "" {
				vk := VersionKey(v.Brand, v.Model)
				if versions[vk] == nil {
					versions[vk] = newDistinct()
				}
				versions[vk].add(v.Version)
			}
		}
		transmissions.add(v.Transmission)
		fuels.add(v.FuelType)
		colors.add(v.Color)
		for _, e := range v.Extras {
			extras.add(e)
		}
		if v.DoorCount != nil && *v.DoorCount > 0 {
			doors[*v.DoorCount] = true
		}
	}

	m := Metadata{
		Brands:        brands.sorted(),
		Models:        make(map[string][]string, len(models)),
		Versions:      make(map[string][]string, len(versions)),
		Transmissions: transmissions.sorted(),
		FuelTypes:     fuels.sorted(),
		Colors:        colors.sorted(),
		Extras:        extras.sorted(),
		DoorCounts:    make([]int, 0, len(doors)),
		Years:         positiveRange(vehicles, func(v *domain.Vehicle) int { return v.Year }, Range{MinYear, now().Year() + 1}),
		PriceArs:      positiveRange(vehicles, func(v *domain.Vehicle) int { return v.PriceArs }, Range{}),
		PriceUsd:      positiveRange(vehicles, func(v *domain.Vehicle) int { return v.PriceUsd }, Range{}),
		Km:            positiveRange(vehicles, func(v *domain.Vehicle) int { return v.OdometerKm }, Range{}),
	}
	for k, d := range models {
		m.Models[k] = d.sorted()
	}
	for k, d := range versions {
		m.Versions[k] = d.sorted()
	}
	for n := range doors {
		m.DoorCounts = append(m.DoorCounts, n)
	}
	slices.Sort(m.DoorCounts)
	return m
}

// positiveRange is min/max over the vehicles where field is > 0, or
// fallback when none qualifies.
func positiveRange(vehicles []domain.Vehicle, field func(v *domain.Vehicle) int, fallback Range) Range {
	r, found := Range{}, false
	for i := range vehicles {
		n := field(&vehicles[i])
		if n <= 0 {
			continue
		}
		if !found {
			r, found = Range{n, n}, true
			continue
		}
		r.Min = min(r.Min, n)
		r.Max = max(r.Max, n)
	}
	if !found {
		return fallback
	}
	return r
}
