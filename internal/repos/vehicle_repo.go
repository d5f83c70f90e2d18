package repos

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"dealership/data"
	"dealership/internal/domain"
)

// VehicleRepo is the read-only vehicle store. It is loaded once and shared
// by every request; nothing writes to it after construction.
type VehicleRepo struct {
	vehicles []domain.Vehicle
	bySlug   map[string]int
}

// LoadVehicles reads the catalog from path, or from the embedded dataset
// when path is empty.
func LoadVehicles(path string) (*VehicleRepo, error) {
	raw := data.Vehicles
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		raw = b
	}
	var vs []domain.Vehicle
	if err := json.Unmarshal(raw, &vs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewVehicleRepo(vs)
}

// NewVehicleRepo indexes vs by slug. Duplicate or missing slugs and records
// priced in both currencies are rejected.
func NewVehicleRepo(vs []domain.Vehicle) (*VehicleRepo, error) {
	r := &VehicleRepo{vehicles: vs, bySlug: make(map[string]int, len(vs))}
	for i, v := range vs {
		slug := strings.TrimSpace(v.Slug)
		if slug == "" {
			return nil, fmt.Errorf("vehicle %d (id %q): missing slug", i, v.ID)
		}
		if _, dup := r.bySlug[slug]; dup {
			return nil, fmt.Errorf("vehicle %d: duplicate slug %q", i, slug)
		}
		if v.PriceArs > 0 && v.PriceUsd > 0 {
			return nil, fmt.Errorf("vehicle %q: priced in both currencies", slug)
		}
		if v.PriceArs < 0 || v.PriceUsd < 0 || v.OdometerKm < 0 {
			return nil, fmt.Errorf("vehicle %q: negative price or odometer", slug)
		}
		r.bySlug[slug] = i
	}
	if r.vehicles == nil {
		r.vehicles = []domain.Vehicle{}
	}
	return r, nil
}

// All returns the store in file order. Callers must not modify it.
func (r *VehicleRepo) All() []domain.Vehicle { return r.vehicles }

func (r *VehicleRepo) BySlug(slug string) (domain.Vehicle, bool) {
	i, ok := r.bySlug[strings.TrimSpace(slug)]
	if !ok {
		return domain.Vehicle{}, false
	}
	return r.vehicles[i], true
}

func (r *VehicleRepo) Len() int { return len(r.vehicles) }
