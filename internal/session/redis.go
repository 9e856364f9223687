package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"gigboard/internal/common"
	"gigboard/internal/domain/session"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis with the session TTL as key expiry,
// so expired sessions need no sweeper.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, sess session.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode session", err)
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return common.NewError(common.CodeInternal, "session already expired", nil)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.Token, payload, ttl).Err(); err != nil {
		return common.NewError(common.CodeInternal, "failed to store session", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*session.Session, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.NewError(common.CodeNotFound, "session not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load session", err)
	}
	var sess session.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode session", err)
	}
	sess.Token = token
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete session", err)
	}
	return nil
}
