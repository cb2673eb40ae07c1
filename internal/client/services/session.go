// Package services contains the application services of the WorldQuery
// client: the session/favorites container, the registered-users registry,
// and the country data cache. Services are plain injectable objects owned
// by the application root; there is no package-level state.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"worldquery/internal/client/models"
	"worldquery/internal/client/storage"
	"worldquery/internal/logging"
)

// Persisted key layout. Favorites live under one key per user email so a
// later login with the same email restores them.
const (
	currentUserKey     = "user"
	registeredUsersKey = "users"
	favoritesKeyPrefix = "favorites_"
)

func favoritesKey(email string) string {
	return favoritesKeyPrefix + email
}

// Session owns the current-user identity and that user's favorite-country
// set. It is mutated only by direct user-triggered calls; every mutation
// writes through to the store synchronously.
//
// Storage reads degrade silently: a missing or unreadable persisted record
// leaves the session logged out (or the favorites empty) instead of
// surfacing an error. That behavior is load-bearing and covered by tests.
type Session struct {
	store storage.Store
	log   logging.Logger

	user      *models.User
	favorites map[string]struct{}
}

func NewSession(store storage.Store, log logging.Logger) *Session {
	return &Session{
		store:     store,
		log:       log.With("component", "session"),
		favorites: make(map[string]struct{}),
	}
}

// Hydrate restores the session from the persisted current-user record.
// Absent, unparseable, or identity-less records leave the session logged
// out; the parse failure is never propagated. The favorites load has its
// own independent empty-set fallback.
func (s *Session) Hydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, currentUserKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read current user, staying logged out", "error", err)
		return
	}
	if raw == nil {
		return
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn(ctx, "discarding unreadable current-user record", "error", err)
		return
	}
	if user.Email == "" {
		s.log.Warn(ctx, "discarding current-user record without identity")
		return
	}

	s.user = &user
	s.favorites = s.loadFavorites(ctx, user.Email)
}

// Login constructs the current-user record from the given credentials,
// persists it, and loads the user's favorites. The credentials are not
// checked against the registered-users list; the registry is consulted only
// at sign-up, for uniqueness.
func (s *Session) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	user := &models.User{
		ID:       uuid.NewString(),
		Username: models.UsernameFromEmail(creds.Email),
		Email:    creds.Email,
		Password: creds.Password,
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, currentUserKey, raw); err != nil {
		return nil, fmt.Errorf("failed to persist current user: %w", err)
	}

	s.user = user
	s.favorites = s.loadFavorites(ctx, user.Email)
	s.log.Info(ctx, "logged in", "username", user.Username)
	return user, nil
}

// Logout clears the in-memory session and removes the persisted
// current-user key. The per-user favorites key is intentionally left in
// place.
func (s *Session) Logout(ctx context.Context) error {
	s.user = nil
	s.favorites = make(map[string]struct{})

	if err := s.store.Remove(ctx, currentUserKey); err != nil {
		return fmt.Errorf("failed to remove current user: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// ToggleFavorite flips membership of code in the favorites set and persists
// the new set as a sorted list. When logged out it is a silent no-op.
func (s *Session) ToggleFavorite(ctx context.Context, code string) error {
	if s.user == nil {
		return nil
	}

	if _, ok := s.favorites[code]; ok {
		delete(s.favorites, code)
	} else {
		s.favorites[code] = struct{}{}
	}

	raw, err := json.Marshal(s.Favorites())
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, favoritesKey(s.user.Email), raw); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}

// IsFavorite reports membership of code in the in-memory favorites set.
// Always false when logged out.
func (s *Session) IsFavorite(code string) bool {
	_, ok := s.favorites[code]
	return ok
}

// Favorites returns the favorite codes as a sorted list, which is also the
// persisted form. The sort is cosmetic; membership is order-independent.
func (s *Session) Favorites() []string {
	codes := make([]string, 0, len(s.favorites))
	for code := range s.favorites {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CurrentUser returns the logged-in user, or nil.
func (s *Session) CurrentUser() *models.User {
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	return s.user != nil
}

func (s *Session) loadFavorites(ctx context.Context, email string) map[string]struct{} {
	set := make(map[string]struct{})

	raw, err := s.store.Get(ctx, favoritesKey(email))
	if err != nil {
		s.log.Warn(ctx, "failed to read favorites, starting empty", "error", err)
		return set
	}
	if raw == nil {
		return set
	}

	var codes []string
	if err := json.Unmarshal(raw, &codes); err != nil {
		s.log.Warn(ctx, "discarding unreadable favorites record", "error", err)
		return set
	}
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}
