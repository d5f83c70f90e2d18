package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite database holding leads and favorites and makes
// sure the schema exists. The vehicle catalog itself is not stored here.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// every connection to :memory: is its own database
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Leads (contact and vehicle enquiry forms)
CREATE TABLE IF NOT EXISTS leads(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  message TEXT NOT NULL DEFAULT '',
  vehicle_slug TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);

-- Favorites, keyed by the anonymous 'sid' cookie
CREATE TABLE IF NOT EXISTS favorites(
  session_id   TEXT NOT NULL,
  vehicle_slug TEXT NOT NULL,
  created_at   TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (session_id, vehicle_slug)
);
CREATE INDEX IF NOT EXISTS idx_favorites_session ON favorites(session_id);
`
	_, err := db.Exec(schema)
	return err
}
