package handlers

import (
	"github.com/jmoiron/sqlx"

	"dealership/internal/repos"
	"dealership/internal/services"
)

type Deps struct {
	Home      *HomeHandler
	Catalog   *CatalogHandler
	Favorites *FavoritesHandler
	Leads     *LeadHandler
	API       *APIHandler

	FavoritesSvc *services.FavoritesService
}

func NewDeps(db *sqlx.DB, vehicles *repos.VehicleRepo) *Deps {
	catalogSvc := services.NewCatalogService(vehicles)
	leadSvc := services.NewLeadService(repos.NewLeadRepo(db), vehicles)
	favSvc := services.NewFavoritesService(repos.NewFavoriteRepo(db), vehicles)

	return &Deps{
		Home:         &HomeHandler{Catalog: catalogSvc},
		Catalog:      &CatalogHandler{Catalog: catalogSvc, Favorites: favSvc},
		Favorites:    &FavoritesHandler{Favorites: favSvc},
		Leads:        &LeadHandler{Leads: leadSvc, Catalog: catalogSvc},
		API:          &APIHandler{Catalog: catalogSvc, Leads: leadSvc, Favorites: favSvc},
		FavoritesSvc: favSvc,
	}
}
