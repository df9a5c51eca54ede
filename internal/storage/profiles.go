// ABOUTME: User profile persistence backed by Charm KV
// ABOUTME: Profiles sync across devices via the charm account's SSH key
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/purposewaze/relate-coach/internal/charm"
	"github.com/purposewaze/relate-coach/internal/models"
)

// ProfileStore handles user profile persistence in Charm KV
type ProfileStore struct {
	kv KV
}

// NewProfileStore creates a new ProfileStore
func NewProfileStore(kv KV) *ProfileStore {
	return &ProfileStore{kv: kv}
}

// Save stores a user profile, stamping LastUpdated
func (s *ProfileStore) Save(profile *models.UserProfile) error {
	if profile.UserID == "" {
		return fmt.Errorf("profile user_id cannot be empty")
	}
	profile.LastUpdated = time.Now().UTC()
	return s.kv.SetJSON(charm.ProfileKey(profile.UserID), profile)
}

// Get retrieves a user profile, nil if none has been saved
func (s *ProfileStore) Get(userID string) (*models.UserProfile, error) {
	data, err := s.kv.Get(charm.ProfileKey(userID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}
