package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

type searchJSON struct {
	Items []struct {
		Slug     string `json:"slug"`
		PriceArs int    `json:"priceArs"`
	} `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	TotalPages int    `json:"totalPages"`
	Query      string `json:"query"`
	ShareQuery string `json:"shareQuery"`
	Applied    struct {
		Page int    `json:"page"`
		Sort string `json:"sort"`
	} `json:"appliedParams"`
	Chips []struct {
		Param       string `json:"param"`
		RemoveQuery string `json:"removeQuery"`
	} `json:"chips"`
}

func TestAPISearch(t *testing.T) {
	app := newApp(t, testConfig())

	var res searchJSON
	code := getJSON(t, app, "/api/v1/vehicles?marca=toyota&moneda=pesos&sort=precio_asc", &res)
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	var slugs []string
	for _, it := range res.Items {
		slugs = append(slugs, it.Slug)
	}
	want := "[toyota-etios-xls-2019 toyota-corolla-xei-2020 toyota-yaris-xls-0km]"
	if fmt.Sprint(slugs) != want {
		t.Fatalf("got %v, want %s", slugs, want)
	}
	if res.Query != "marca=toyota&moneda=pesos&sort=precio_asc" {
		t.Fatalf("canonical query: %q", res.Query)
	}
	if !strings.Contains(res.ShareQuery, "page=1") || !strings.Contains(res.ShareQuery, "perPage=12") {
		t.Fatalf("share query should carry defaults: %q", res.ShareQuery)
	}
	if len(res.Chips) != 2 || res.Chips[0].Param != "marca" || res.Chips[0].RemoveQuery != "moneda=pesos&sort=precio_asc" {
		t.Fatalf("chips: %+v", res.Chips)
	}
}

func TestAPISearchClampsPage(t *testing.T) {
	app := newApp(t, testConfig())

	var all searchJSON
	getJSON(t, app, "/api/v1/vehicles", &all)
	if all.TotalPages < 2 || all.PerPage != 12 || all.Chips == nil {
		t.Fatalf("unexpected default search: %+v", all)
	}

	var res searchJSON
	getJSON(t, app, "/api/v1/vehicles?page=999999&perPage=7&sort=bogus", &res)
	if res.Page != res.TotalPages || res.Applied.Page != res.TotalPages {
		t.Fatalf("page not clamped: page=%d applied=%d total=%d", res.Page, res.Applied.Page, res.TotalPages)
	}
	if res.PerPage != 12 || res.Applied.Sort != "recomendados" || len(res.Items) == 0 {
		t.Fatalf("invalid values should fall back to defaults: %+v", res)
	}
}

func TestAPIFilters(t *testing.T) {
	app := newApp(t, testConfig())

	var meta struct {
		Brands []string `json:"brands"`
		Years  struct {
			Min int `json:"min"`
			Max int `json:"max"`
		} `json:"years"`
		DoorCounts []int `json:"doorCounts"`
	}
	getJSON(t, app, "/api/v1/filters", &meta)
	seen := map[string]bool{}
	for _, b := range meta.Brands {
		if seen[strings.ToLower(b)] {
			t.Fatalf("duplicate brand %q in %v", b, meta.Brands)
		}
		seen[strings.ToLower(b)] = true
	}
	if meta.Years.Min > meta.Years.Max || meta.Years.Min < 1980 || len(meta.DoorCounts) == 0 {
		t.Fatalf("bad metadata: %+v", meta)
	}

	var models struct {
		Models []string `json:"models"`
	}
	getJSON(t, app, "/api/v1/filters/models?marca=CITROEN", &models)
	if fmt.Sprint(models.Models) != "[Berlingo C4 Cactus]" {
		t.Fatalf("models: %v", models.Models)
	}

	var versions struct {
		Versions []string `json:"versions"`
	}
	getJSON(t, app, "/api/v1/filters/versions?marca=toyota&modelo=hilux", &versions)
	if fmt.Sprint(versions.Versions) != "[SRX 2.8 4x4 AT]" {
		t.Fatalf("versions: %v", versions.Versions)
	}
	getJSON(t, app, "/api/v1/filters/versions?marca=nada", &versions)
	if versions.Versions == nil || len(versions.Versions) != 0 {
		t.Fatalf("unknown brand should give an empty list, got %v", versions.Versions)
	}
}

func TestAPIVehicleAndCompare(t *testing.T) {
	app := newApp(t, testConfig())

	var detail struct {
		Vehicle struct {
			Slug string `json:"slug"`
		} `json:"vehicle"`
		Related    []struct{ Slug string } `json:"related"`
		ViewingNow int                     `json:"viewingNow"`
	}
	if code := getJSON(t, app, "/api/v1/vehicles/toyota-hilux-srx-2021", &detail); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if detail.Vehicle.Slug != "toyota-hilux-srx-2021" || detail.ViewingNow < 3 || detail.ViewingNow > 17 {
		t.Fatalf("detail: %+v", detail)
	}
	for _, r := range detail.Related {
		if r.Slug == detail.Vehicle.Slug {
			t.Fatal("vehicle listed as related to itself")
		}
	}

	var missing map[string]string
	if code := getJSON(t, app, "/api/v1/vehicles/no-existe", &missing); code != http.StatusNotFound {
		t.Fatalf("missing vehicle: status %d", code)
	}

	var cmp struct {
		Items []struct{ Slug string } `json:"items"`
	}
	getJSON(t, app, "/api/v1/compare?autos=fiat-toro-volcano-2021,nope,fiat-toro-volcano-2021,ford-ka-se-2016,bmw-320i-sport-2019,audi-a4-avant-2018", &cmp)
	var got []string
	for _, it := range cmp.Items {
		got = append(got, it.Slug)
	}
	if fmt.Sprint(got) != "[fiat-toro-volcano-2021 ford-ka-se-2016 bmw-320i-sport-2019]" {
		t.Fatalf("compare: %v", got)
	}
}

func TestCatalogPage(t *testing.T) {
	app := newApp(t, testConfig())

	resp, body := get(t, app, "/autos?marca=Toyota&sort=anio_desc&perPage=12")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	for _, want := range []string{"Toyota Hilux", "Marca: Toyota", `href="/autos?sort=anio_desc"`} {
		if !strings.Contains(body, want) {
			t.Errorf("catalog page missing %q", want)
		}
	}
	if strings.Contains(body, "Volkswagen Amarok") {
		t.Error("filtered out vehicle shown")
	}
}

func TestCatalogPagination(t *testing.T) {
	app := newApp(t, testConfig())

	_, body := get(t, app, "/autos")
	if !strings.Contains(body, `rel="next" href="/autos?page=2"`) || strings.Contains(body, `rel="prev"`) {
		t.Fatal("first page should link to page 2 only")
	}
	_, body = get(t, app, "/autos?page=2")
	if !strings.Contains(body, `rel="prev" href="/autos"`) {
		t.Fatal("page 2 should link back to the bare catalog url")
	}
}

func TestVehicleDetailPage(t *testing.T) {
	app := newApp(t, testConfig())

	resp, body := get(t, app, "/autos/peugeot-208-allure-2022")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "Peugeot 208 Allure") || !strings.Contains(body, "$ 17.900.000") {
		t.Fatalf("detail page: %d", resp.StatusCode)
	}
	for _, target := range []string{"/autos/no-existe", "/autos/Not_A_Slug"} {
		resp, body = get(t, app, target)
		if resp.StatusCode != http.StatusNotFound || !strings.Contains(body, "ya no está disponible") {
			t.Fatalf("%s: want friendly 404, got %d", target, resp.StatusCode)
		}
	}
}

func TestHomeAndHealth(t *testing.T) {
	app := newApp(t, testConfig())

	resp, body := get(t, app, "/")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "Destacados") {
		t.Fatalf("home: %d", resp.StatusCode)
	}
	resp, body = get(t, app, "/healthz")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"ok":true`) {
		t.Fatalf("healthz: %d %s", resp.StatusCode, body)
	}
}
