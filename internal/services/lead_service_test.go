package services_test

import (
	"errors"
	"testing"

	"dealership/internal/domain"
	"dealership/internal/repos"
	"dealership/internal/services"
)

func TestLeadService_Submit(t *testing.T) {
	db := memdb(t)
	svc := services.NewLeadService(repos.NewLeadRepo(db), fixtureStore(t))

	lead, err := svc.Submit(domain.LeadInput{
		Name:        "  Lucía   Fernández ",
		Email:       "lucia@example.com",
		Phone:       "+54 9 11 4567-8901",
		Message:     "¿Sigue disponible?",
		VehicleSlug: "hilux-2021",
	})
	if err != nil {
		t.Fatal(err)
	}
	if lead.ID == "" || lead.CreatedAt == "" || lead.Name != "Lucía Fernández" {
		t.Fatalf("unexpected lead: %+v", lead)
	}

	stored, err := repos.NewLeadRepo(db).Get(lead.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored != lead {
		t.Fatalf("stored %+v, want %+v", stored, lead)
	}
}

func TestLeadService_Validation(t *testing.T) {
	db := memdb(t)
	svc := services.NewLeadService(repos.NewLeadRepo(db), fixtureStore(t))

	_, err := svc.Submit(domain.LeadInput{Name: "A", Email: "nope", Phone: "12", VehicleSlug: "gone-2010"})
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	for _, f := range []string{"name", "email", "phone", "vehicle"} {
		if verr.Fields[f] == "" {
			t.Errorf("missing message for %s", f)
		}
	}
	if _, ok := verr.Fields["message"]; ok {
		t.Error("empty message is allowed")
	}

	recent, err := svc.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Fatalf("invalid lead was stored: %+v", recent)
	}
}

func TestLeadService_RecentNewestFirst(t *testing.T) {
	db := memdb(t)
	svc := services.NewLeadService(repos.NewLeadRepo(db), fixtureStore(t))
	for _, name := range []string{"Primero", "Segundo", "Tercero"} {
		if _, err := svc.Submit(domain.LeadInput{Name: name, Email: "a@b.co", Phone: "1145678901"}); err != nil {
			t.Fatal(err)
		}
	}
	recent, err := svc.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Name != "Tercero" || recent[1].Name != "Segundo" {
		t.Fatalf("got %+v", recent)
	}
}
