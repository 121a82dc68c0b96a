package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"lingoTrackAPI/internal/profile"
)

const profileCacheTTL = 5 * time.Minute

// CachedProfileStore is a read-through cache in front of another ProfileStore.
// Cache failures are logged and the request falls through to the inner store,
// so redis being down never breaks a request.
type CachedProfileStore struct {
	inner ProfileStore
	rdb   *redis.Client
}

func NewCachedProfileStore(inner ProfileStore, rdb *redis.Client) *CachedProfileStore {
	return &CachedProfileStore{inner: inner, rdb: rdb}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

func (s *CachedProfileStore) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	cached, err := s.rdb.Get(ctx, profileKey(userID)).Bytes()
	if err == nil {
		p := &profile.Profile{}
		if err := json.Unmarshal(cached, p); err == nil {
			return p, nil
		}
		// Corrupt entry; drop it and reload.
		s.rdb.Del(ctx, profileKey(userID))
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Profile cache read failed for %s: %v", userID, err)
	}

	p, err := s.inner.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.set(ctx, p)
	return p, nil
}

func (s *CachedProfileStore) Upsert(ctx context.Context, userID string) (*profile.Profile, error) {
	p, err := s.inner.Upsert(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.set(ctx, p)
	return p, nil
}

func (s *CachedProfileStore) Update(ctx context.Context, userID string, upd *ProfileUpdate) (*profile.Profile, error) {
	p, err := s.inner.Update(ctx, userID, upd)
	if err != nil {
		// The write may or may not have landed; make sure stale data is gone.
		if delErr := s.rdb.Del(ctx, profileKey(userID)).Err(); delErr != nil {
			log.Printf("Profile cache invalidation failed for %s: %v", userID, delErr)
		}
		return nil, err
	}

	s.set(ctx, p)
	return p, nil
}

func (s *CachedProfileStore) set(ctx context.Context, p *profile.Profile) {
	payload, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, profileKey(p.UserID), payload, profileCacheTTL).Err(); err != nil {
		log.Printf("Profile cache write failed for %s: %v", p.UserID, err)
	}
}
