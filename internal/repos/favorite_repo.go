package repos

import (
	"github.com/jmoiron/sqlx"
)

type FavoriteRepo struct{ db *sqlx.DB }

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

// Add reports whether the slug was newly saved.
func (r *FavoriteRepo) Add(sessionID, slug string) (bool, error) {
	res, err := r.db.Exec(`
	  INSERT INTO favorites(session_id, vehicle_slug, created_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(session_id, vehicle_slug) DO NOTHING
	`, sessionID, slug)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Remove reports whether a saved slug was deleted.
func (r *FavoriteRepo) Remove(sessionID, slug string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM favorites WHERE session_id=? AND vehicle_slug=?`, sessionID, slug)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *FavoriteRepo) Clear(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM favorites WHERE session_id=?`, sessionID)
	return err
}

func (r *FavoriteRepo) Has(sessionID, slug string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM favorites WHERE session_id=? AND vehicle_slug=?`, sessionID, slug)
	return n > 0, err
}

// List returns the saved slugs in the order they were added.
func (r *FavoriteRepo) List(sessionID string) ([]string, error) {
	var out []string
	err := r.db.Select(&out, `
	  SELECT vehicle_slug FROM favorites
	  WHERE session_id = ?
	  ORDER BY created_at, rowid
	`, sessionID)
	return out, err
}
