package services

import (
	"errors"
	"sync"

	"dealership/internal/domain"
	"dealership/internal/repos"
)

var ErrUnknownVehicle = errors.New("unknown vehicle")

// FavoritesService keeps the vehicles a visitor saved, keyed by the
// anonymous session id, and tells subscribers about every change.
type FavoritesService struct {
	Repo     *repos.FavoriteRepo
	Vehicles *repos.VehicleRepo

	mu     sync.Mutex
	nextID int
	subs   map[int]func(domain.FavoriteEvent)
}

func NewFavoritesService(r *repos.FavoriteRepo, vehicles *repos.VehicleRepo) *FavoritesService {
	return &FavoritesService{Repo: r, Vehicles: vehicles, subs: map[int]func(domain.FavoriteEvent){}}
}

// Get returns the saved vehicles in the order they were added. Slugs that
// are no longer in the catalog are skipped.
func (s *FavoritesService) Get(sessionID string) ([]domain.Vehicle, error) {
	slugs, err := s.Repo.List(sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Vehicle, 0, len(slugs))
	for _, slug := range slugs {
		if v, ok := s.Vehicles.BySlug(slug); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *FavoritesService) Has(sessionID, slug string) (bool, error) {
	return s.Repo.Has(sessionID, slug)
}

// Toggle saves slug, or removes it if it was already saved, and reports
// whether it is saved afterwards.
func (s *FavoritesService) Toggle(sessionID, slug string) (bool, error) {
	if _, ok := s.Vehicles.BySlug(slug); !ok {
		return false, ErrUnknownVehicle
	}
	added, err := s.Repo.Add(sessionID, slug)
	if err != nil {
		return false, err
	}
	if added {
		s.publish(domain.FavoriteEvent{SessionID: sessionID, Slug: slug, Kind: domain.FavoriteAdded})
		return true, nil
	}
	if _, err := s.Repo.Remove(sessionID, slug); err != nil {
		return false, err
	}
	s.publish(domain.FavoriteEvent{SessionID: sessionID, Slug: slug, Kind: domain.FavoriteRemoved})
	return false, nil
}

func (s *FavoritesService) Remove(sessionID, slug string) error {
	removed, err := s.Repo.Remove(sessionID, slug)
	if err != nil {
		return err
	}
	if removed {
		s.publish(domain.FavoriteEvent{SessionID: sessionID, Slug: slug, Kind: domain.FavoriteRemoved})
	}
	return nil
}

func (s *FavoritesService) Clear(sessionID string) error {
	if err := s.Repo.Clear(sessionID); err != nil {
		return err
	}
	s.publish(domain.FavoriteEvent{SessionID: sessionID, Kind: domain.FavoriteCleared})
	return nil
}

// Subscribe registers fn for every later change. The returned func
// unregisters it; calling it twice is harmless.
func (s *FavoritesService) Subscribe(fn func(domain.FavoriteEvent)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// publish calls subscribers outside the lock so they may subscribe or
// cancel from inside the callback.
func (s *FavoritesService) publish(ev domain.FavoriteEvent) {
	s.mu.Lock()
	fns := make([]func(domain.FavoriteEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
