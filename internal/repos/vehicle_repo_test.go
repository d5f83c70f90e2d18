package repos_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dealership/internal/domain"
	"dealership/internal/repos"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	r, err := repos.LoadVehicles("")
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, v := range r.All() {
		if v.PriceArs > 0 && v.PriceUsd > 0 {
			t.Errorf("%s: priced in both currencies", v.Slug)
		}
		if v.CoverImage == "" {
			t.Errorf("%s: missing cover image", v.Slug)
		}
		if got, ok := r.BySlug(v.Slug); !ok || got.ID != v.ID {
			t.Errorf("%s: lookup by slug failed", v.Slug)
		}
	}
	if _, ok := r.BySlug("does-not-exist"); ok {
		t.Fatal("unknown slug found")
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehicles.json")
	body := `[{"id":"1","slug":"gol-2015","brand":"Volkswagen","model":"Gol","year":2015,"priceArs":5000000,"doorCount":5}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := repos.LoadVehicles(path)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := r.BySlug("gol-2015")
	if !ok || v.DoorCount == nil || *v.DoorCount != 5 || v.Price(domain.CurrencyPesos) != 5000000 {
		t.Fatalf("unexpected vehicle: %+v", v)
	}

	if _, err := repos.LoadVehicles(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestNewVehicleRepoRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		vs   []domain.Vehicle
		want string
	}{
		{"duplicate slug", []domain.Vehicle{{Slug: "a"}, {Slug: "a"}}, "duplicate slug"},
		{"missing slug", []domain.Vehicle{{ID: "x", Slug: "  "}}, "missing slug"},
		{"both currencies", []domain.Vehicle{{Slug: "a", PriceArs: 1, PriceUsd: 1}}, "both currencies"},
		{"negative km", []domain.Vehicle{{Slug: "a", OdometerKm: -1}}, "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repos.NewVehicleRepo(tt.vs)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("want error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestEmptyStore(t *testing.T) {
	r, err := repos.NewVehicleRepo(nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.All() == nil || r.Len() != 0 {
		t.Fatalf("empty store should be an empty, non-nil list")
	}
}
