package sessionrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/primeitclub/the-newbies/model"
)

// Record is one stored login: the session plus a snapshot of the user it
// resolves to.
type Record struct {
	Session model.Session `json:"session"`
	User    model.User    `json:"user"`
}

type Repo interface {
	Create(ctx context.Context, rec Record) error
	// Get returns nil, nil for unknown or expired sessions.
	Get(ctx context.Context, sessionID string) (*Record, error)
	Delete(ctx context.Context, sessionID string) error
}

// NewRedisClient connects and pings, so a bad address fails at startup.
func NewRedisClient(host, port, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

type redisRepo struct{ client *redis.Client }

func NewRedis(client *redis.Client) Repo { return &redisRepo{client: client} }

func key(sessionID string) string { return "session:" + sessionID }

func (r *redisRepo) Create(ctx context.Context, rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	ttl := time.Until(rec.Session.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}
	return r.client.Set(ctx, key(rec.Session.ID), b, ttl).Err()
}

func (r *redisRepo) Get(ctx context.Context, sessionID string) (*Record, error) {
	b, err := r.client.Get(ctx, key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *redisRepo) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, key(sessionID)).Err()
}
