package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"dealership/internal/domain"
	"dealership/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func fixtureStore(t *testing.T) *repos.VehicleRepo {
	t.Helper()
	vs := []domain.Vehicle{
		{Slug: "corolla-2020", Brand: "Toyota", Model: "Corolla", Tipologia: domain.BodySedan, Year: 2020, OdometerKm: 40000, PriceArs: 20000000, IsFeatured: true},
		{Slug: "corolla-2018", Brand: "toyota ", Model: "corolla", Tipologia: domain.BodySedan, Year: 2018, OdometerKm: 80000, PriceArs: 15000000},
		{Slug: "hilux-2021", Brand: "Toyota", Model: "Hilux", Tipologia: domain.BodyPickup, Year: 2021, OdometerKm: 65000, PriceUsd: 42000, IsFeatured: true},
		{Slug: "cronos-2022", Brand: "Fiat", Model: "Cronos", Tipologia: domain.BodySedan, Year: 2022, OdometerKm: 31000, PriceArs: 13200000},
		{Slug: "ranger-2022", Brand: "Ford", Model: "Ranger", Tipologia: domain.BodyPickup, Year: 2022, OdometerKm: 48000, PriceUsd: 36000, IsFeatured: true},
	}
	r, err := repos.NewVehicleRepo(vs)
	if err != nil {
		t.Fatal(err)
	}
	return r
}
