package domain

type FavoriteEventKind string

const (
	FavoriteAdded   FavoriteEventKind = "added"
	FavoriteRemoved FavoriteEventKind = "removed"
	FavoriteCleared FavoriteEventKind = "cleared"
)

// FavoriteEvent is published after a session's favorites change. Slug is
// empty for FavoriteCleared.
type FavoriteEvent struct {
	SessionID string            `json:"-"`
	Slug      string            `json:"slug,omitempty"`
	Kind      FavoriteEventKind `json:"kind"`
}
