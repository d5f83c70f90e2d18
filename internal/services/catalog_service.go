package services

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"dealership/internal/catalog"
	"dealership/internal/domain"
	"dealership/internal/repos"
)

// MaxCompare is how many vehicles the comparison page shows side by side.
const MaxCompare = 3

type CatalogService struct {
	Vehicles *repos.VehicleRepo
}

func NewCatalogService(vehicles *repos.VehicleRepo) *CatalogService {
	return &CatalogService{Vehicles: vehicles}
}

func (s *CatalogService) Search(p catalog.Params) catalog.Result {
	return catalog.Search(p, s.Vehicles.All())
}

// Metadata is rebuilt on every call; the store is small and never changes.
func (s *CatalogService) Metadata() catalog.Metadata {
	return catalog.BuildMetadata(s.Vehicles.All())
}

func (s *CatalogService) Vehicle(slug string) (domain.Vehicle, bool) {
	return s.Vehicles.BySlug(slug)
}

// Featured returns up to n featured vehicles in recommended order.
func (s *CatalogService) Featured(n int) []domain.Vehicle {
	var out []domain.Vehicle
	for _, v := range s.Vehicles.All() {
		if v.IsFeatured {
			out = append(out, v)
		}
	}
	catalog.SortVehicles(out, catalog.SortRecommended, "")
	return limit(out, n)
}

// Related lists up to n other vehicles of the same brand, topped up with
// vehicles of the same tipologia.
func (s *CatalogService) Related(v domain.Vehicle, n int) []domain.Vehicle {
	var sameBrand, sameBody []domain.Vehicle
	brand := catalog.NormalizeKey(v.Brand)
	for _, o := range s.Vehicles.All() {
		switch {
		case o.Slug == v.Slug:
		case brand != "" && catalog.NormalizeKey(o.Brand) == brand:
			sameBrand = append(sameBrand, o)
		case v.Tipologia != "" && o.Tipologia == v.Tipologia:
			sameBody = append(sameBody, o)
		}
	}
	catalog.SortVehicles(sameBrand, catalog.SortRecommended, "")
	catalog.SortVehicles(sameBody, catalog.SortRecommended, "")
	return limit(append(sameBrand, sameBody...), n)
}

// Compare resolves up to MaxCompare distinct slugs in the order given.
// Unknown slugs are skipped.
func (s *CatalogService) Compare(slugs []string) []domain.Vehicle {
	out := []domain.Vehicle{}
	seen := map[string]bool{}
	for _, slug := range slugs {
		if len(out) == MaxCompare {
			break
		}
		v, ok := s.Vehicles.BySlug(slug)
		if !ok || seen[v.Slug] {
			continue
		}
		seen[v.Slug] = true
		out = append(out, v)
	}
	return out
}

// ViewingNow is the "N people are looking at this car" figure on the
// detail page. It is cosmetic but stable per slug: 3..17.
func ViewingNow(slug string) int {
	sum := blake2b.Sum256([]byte(slug))
	return 3 + int(binary.BigEndian.Uint32(sum[:4])%15)
}

func limit(vs []domain.Vehicle, n int) []domain.Vehicle {
	if vs == nil {
		vs = []domain.Vehicle{}
	}
	if n > 0 && len(vs) > n {
		return vs[:n]
	}
	return vs
}
