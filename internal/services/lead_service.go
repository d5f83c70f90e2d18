package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealership/internal/domain"
	"dealership/internal/repos"
	"dealership/internal/validate"
)

// ValidationError maps form fields to a message for the visitor.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid " + strings.Join(keys, ", ")
}

type LeadService struct {
	Repo     *repos.LeadRepo
	Vehicles *repos.VehicleRepo
}

func NewLeadService(r *repos.LeadRepo, vehicles *repos.VehicleRepo) *LeadService {
	return &LeadService{Repo: r, Vehicles: vehicles}
}

// Submit validates and stores an enquiry. Invalid input comes back as a
// *ValidationError and nothing is stored.
func (s *LeadService) Submit(in domain.LeadInput) (domain.Lead, error) {
	bad := map[string]string{}
	name, ok := validate.Name(in.Name)
	if !ok {
		bad["name"] = "Ingresá tu nombre (2 a 60 caracteres)."
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		bad["email"] = "Ingresá un email válido."
	}
	phone, ok := validate.Phone(in.Phone)
	if !ok {
		bad["phone"] = "Ingresá un teléfono válido."
	}
	msg, ok := validate.Message(in.Message)
	if !ok {
		bad["message"] = "El mensaje no puede superar los 1000 caracteres."
	}
	slug := strings.TrimSpace(in.VehicleSlug)
	if slug != "" {
		if _, found := s.Vehicles.BySlug(slug); !found {
			bad["vehicle"] = "El vehículo ya no está disponible."
		}
	}
	if len(bad) > 0 {
		return domain.Lead{}, &ValidationError{Fields: bad}
	}

	l := domain.Lead{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Message:     msg,
		VehicleSlug: slug,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Repo.Insert(l); err != nil {
		return domain.Lead{}, fmt.Errorf("store lead: %w", err)
	}
	return l, nil
}

func (s *LeadService) Recent(n int) ([]domain.Lead, error) {
	return s.Repo.Recent(n)
}
