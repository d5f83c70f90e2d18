package repos

import (
	"github.com/jmoiron/sqlx"

	"dealership/internal/domain"
)

type LeadRepo struct{ db *sqlx.DB }

func NewLeadRepo(db *sqlx.DB) *LeadRepo { return &LeadRepo{db: db} }

func (r *LeadRepo) Insert(l domain.Lead) error {
	_, err := r.db.NamedExec(`
	  INSERT INTO leads(id, name, email, phone, message, vehicle_slug, created_at)
	  VALUES(:id, :name, :email, :phone, :message, :vehicle_slug, :created_at)
	`, l)
	return err
}

func (r *LeadRepo) Get(id string) (domain.Lead, error) {
	var l domain.Lead
	err := r.db.Get(&l, `SELECT id, name, email, phone, message, vehicle_slug, created_at FROM leads WHERE id=?`, id)
	return l, err
}

// Recent lists the newest leads first.
func (r *LeadRepo) Recent(limit int) ([]domain.Lead, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []domain.Lead
	err := r.db.Select(&out, `
	  SELECT id, name, email, phone, message, vehicle_slug, created_at
	  FROM leads
	  ORDER BY rowid DESC
	  LIMIT ?
	`, limit)
	return out, err
}
