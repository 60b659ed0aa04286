package matches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Match states as stored in the registry.
const (
	StatePlaying  = "playing"
	StateFinished = "finished"
)

// ErrMatchNotFound means the registry holds no record for the match id:
// the id was never issued, or its record expired.
var ErrMatchNotFound = errors.New("match not found")

// MatchRecord is the live status of one match. Records are intentionally
// ephemeral: the broker is not durable storage, and matches in flight at a
// process restart are not recoverable anyway.
type MatchRecord struct {
	MatchID string `json:"matchID"`
	State   string `json:"state"`
	MapName string `json:"mapName"`
	Winner  uint32 `json:"winner"`
}

// Registry stores live match status for the status endpoint.
type Registry interface {
	Put(ctx context.Context, rec MatchRecord) error
	Get(ctx context.Context, matchID string) (MatchRecord, error)
}

type redisRegistry struct {
	rdb       *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRegistry creates a Redis-backed registry. Records expire after ttl so
// abandoned matches cannot accumulate.
func NewRegistry(rdb *redis.Client, keyPrefix string, ttl time.Duration) Registry {
	return &redisRegistry{rdb: rdb, keyPrefix: keyPrefix, ttl: ttl}
}

func (r *redisRegistry) Put(ctx context.Context, rec MatchRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key(rec.MatchID), data, r.ttl).Err()
}

func (r *redisRegistry) Get(ctx context.Context, matchID string) (MatchRecord, error) {
	data, err := r.rdb.Get(ctx, r.key(matchID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return MatchRecord{}, ErrMatchNotFound
	}
	if err != nil {
		return MatchRecord{}, err
	}

	var rec MatchRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return MatchRecord{}, err
	}
	return rec, nil
}

func (r *redisRegistry) key(matchID string) string {
	return fmt.Sprintf("%s%s", r.keyPrefix, matchID)
}
