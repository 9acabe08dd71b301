package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/valodiag/internal/logger"
	"github.com/abhisek/valodiag/internal/store"
)

// Storage keys.
const (
	KeyCurrentUser = "current_user"
	KeyPlayersData = "players_data"
)

// DefaultLocale is used for display dates when no locale is configured.
const DefaultLocale = "id-ID"

var (
	// ErrEmptyUsername is a validation error for blank usernames.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrNothingToExport is returned by Export when there is no history.
	ErrNothingToExport = errors.New("no diagnosis history to export")
)

// Store keeps user profiles and the current-user pointer in a KV. Every
// mutation reads the whole players_data mapping, changes it and writes it
// back with a single Set. Concurrent writers race and the last write wins.
type Store struct {
	kv     store.KV
	log    *logger.Logger
	locale string
	now    func() time.Time
	newID  func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for degraded reads.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithLocale sets the locale for history display dates.
func WithLocale(locale string) Option {
	return func(s *Store) { s.locale = locale }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides history entry ID generation.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// New creates a Store over kv.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		log:    logger.Nop(),
		locale: DefaultLocale,
		now:    time.Now,
		newID:  newEntryID,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newEntryID returns a time-ordered UUIDv7.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Locale returns the display locale.
func (s *Store) Locale() string {
	return s.locale
}

// CurrentUser returns the logged-in username. Read failures and an empty
// stored value both count as logged out.
func (s *Store) CurrentUser(ctx context.Context) (string, bool) {
	v, ok, err := s.kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		s.log.Warn("read current user failed", "error", err)
		return "", false
	}
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// SetCurrentUser overwrites the current-user pointer.
func (s *Store) SetCurrentUser(ctx context.Context, username string) error {
	if err := s.kv.Set(ctx, KeyCurrentUser, username); err != nil {
		return fmt.Errorf("set current user: %w", err)
	}
	return nil
}

// ClearCurrentUser removes the current-user pointer.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}
	return nil
}

// AllProfiles loads every profile. A missing, unreadable or malformed value
// yields an empty mapping; a malformed profile inside an otherwise valid
// mapping is skipped on its own. It never fails.
func (s *Store) AllProfiles(ctx context.Context) Profiles {
	raw, ok, err := s.kv.Get(ctx, KeyPlayersData)
	if err != nil {
		s.log.Warn("read players data failed, using empty", "error", err)
		return Profiles{}
	}
	if !ok || raw == "" {
		return Profiles{}
	}
	members, err := splitPlayersData(raw)
	if err != nil {
		s.log.Warn("players data is corrupt, using empty", "error", err)
		return Profiles{}
	}

	all := make(Profiles, len(members))
	for name, m := range members {
		p, err := decodeProfile(m)
		if err != nil {
			s.log.Warn("skipping corrupt profile", "username", name, "error", err)
			continue
		}
		all[name] = p
	}
	return all
}

// SaveAllProfiles serializes all and overwrites players_data. Nil entries
// are not written.
func (s *Store) SaveAllProfiles(ctx context.Context, all Profiles) error {
	out := make(Profiles, len(all))
	for name, p := range all {
		if p == nil {
			continue
		}
		if p.History == nil {
			p.History = []HistoryEntry{}
		}
		out[name] = p
	}
	b, err := encodeJSON(out, "")
	if err != nil {
		return fmt.Errorf("encode players data: %w", err)
	}
	if err := s.kv.Set(ctx, KeyPlayersData, string(b)); err != nil {
		return fmt.Errorf("save players data: %w", err)
	}
	return nil
}

// encodeJSON marshals v without HTML escaping, so titles such as
// "Aim & Dueling" are stored as written.
func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Profile returns the stored profile for username.
func (s *Store) Profile(ctx context.Context, username string) (*Profile, bool) {
	p, ok := s.AllProfiles(ctx)[username]
	return p, ok
}

// Login validates username, makes it the current user and creates its
// profile if missing. It returns the trimmed username.
func (s *Store) Login(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	if err := s.SetCurrentUser(ctx, username); err != nil {
		return "", err
	}

	all := s.AllProfiles(ctx)
	if _, ok := all[username]; ok {
		return username, nil
	}
	now := s.now()
	p := newProfile(now)
	p.LastActivity = formatTimestamp(now)
	all[username] = p
	if err := s.SaveAllProfiles(ctx, all); err != nil {
		return "", err
	}
	s.log.Info("profile created", "user", username)
	return username, nil
}

// Logout clears the current user.
func (s *Store) Logout(ctx context.Context) error {
	return s.ClearCurrentUser(ctx)
}

// RecordDiagnosis prepends a history entry for resultTitle to username's
// profile, creating the profile if needed. It is a no-op for an empty
// username.
func (s *Store) RecordDiagnosis(ctx context.Context, username, resultTitle string) error {
	if username == "" {
		return nil
	}

	all := s.AllProfiles(ctx)
	now := s.now()
	p, ok := all[username]
	if !ok {
		p = newProfile(now)
		all[username] = p
	}

	entry := HistoryEntry{
		ID:        s.newID(),
		Result:    resultTitle,
		Timestamp: formatTimestamp(now),
		Date:      FormatDateTime(now, s.locale),
	}
	p.History = append([]HistoryEntry{entry}, p.History...)
	p.LastActivity = formatTimestamp(now)

	if err := s.SaveAllProfiles(ctx, all); err != nil {
		return err
	}
	s.log.Debug("diagnosis recorded", "user", username, "result", resultTitle, "entries", len(p.History))
	return nil
}

// RenameUser moves oldName's profile to newName and points the current user
// at newName. Profiles are keyed by username, so an existing profile under
// newName is overwritten. It returns the trimmed new name.
func (s *Store) RenameUser(ctx context.Context, oldName, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", ErrEmptyUsername
	}

	if oldName != newName {
		all := s.AllProfiles(ctx)
		if p, ok := all[oldName]; ok {
			if _, exists := all[newName]; exists {
				s.log.Warn("rename overwrites existing profile", "from", oldName, "to", newName)
			}
			all[newName] = p
			delete(all, oldName)
			if err := s.SaveAllProfiles(ctx, all); err != nil {
				return "", err
			}
		}
	}

	if err := s.SetCurrentUser(ctx, newName); err != nil {
		return "", err
	}
	return newName, nil
}

// ClearHistory empties username's history. The profile itself is kept.
func (s *Store) ClearHistory(ctx context.Context, username string) error {
	all := s.AllProfiles(ctx)
	p, ok := all[username]
	if !ok {
		return nil
	}
	p.History = []HistoryEntry{}
	return s.SaveAllProfiles(ctx, all)
}
