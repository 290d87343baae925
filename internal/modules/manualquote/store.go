// README: Manual quote store backed by Redis (one JSON value per request plus a newest-first list).
package manualquote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey         = "manualquote:queue"
	requestKeyPrefix = "manualquote:request:%s"
	// maxQueueLen bounds the list index; request values expire on their own TTL.
	maxQueueLen = 1000
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Save stores r under its ID with ttl and pushes the ID onto the queue.
func (s *Store) Save(ctx context.Context, r Request, ttl time.Duration) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding manual quote: %w", err)
	}
	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, requestKey(r.ID), payload, ttl)
	pipe.LPush(ctx, queueKey, r.ID)
	pipe.LTrim(ctx, queueKey, 0, maxQueueLen-1)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (Request, error) {
	val, err := s.redis.Get(ctx, requestKey(id)).Bytes()
	if err == redis.Nil {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, err
	}
	var r Request
	if err := json.Unmarshal(val, &r); err != nil {
		return Request{}, fmt.Errorf("decoding manual quote %s: %w", id, err)
	}
	return r, nil
}

// List returns up to limit requests, newest first. IDs whose value already
// expired are skipped, so a page may be shorter than limit.
func (s *Store) List(ctx context.Context, limit int) ([]Request, error) {
	ids, err := s.redis.LRange(ctx, queueKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Request, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = requestKey(id)
	}
	vals, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var r Request
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("decoding manual quote %s: %w", ids[i], err)
		}
		out = append(out, r)
	}
	return out, nil
}

func requestKey(id string) string {
	return fmt.Sprintf(requestKeyPrefix, id)
}
