package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps issued login sessions in Redis, keyed by the token's JTI.
// A bearer token is only honoured while its session record still exists,
// which is what makes logout and account removal take effect immediately.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

type Session struct {
	AccountID string `json:"aid"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

func key(id string) string            { return fmt.Sprintf("campusrent:sess:%s", id) }
func accountSetKey(aid string) string { return fmt.Sprintf("campusrent:account_sessions:%s", aid) }

func (s *Store) Create(ctx context.Context, id, accountID, role string) error {
	now := time.Now()
	b, _ := json.Marshal(Session{
		AccountID: accountID,
		Role:      role,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key(id), b, s.ttl)
	pipe.SAdd(ctx, accountSetKey(accountID), id)
	pipe.Expire(ctx, accountSetKey(accountID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	sess, _ := s.Get(ctx, id)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key(id))
	if sess != nil {
		pipe.SRem(ctx, accountSetKey(sess.AccountID), id)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAllForAccount drops every live session of an account. Called when an
// account is deleted or deactivated.
func (s *Store) RevokeAllForAccount(ctx context.Context, accountID string) error {
	ids, err := s.rdb.SMembers(ctx, accountSetKey(accountID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	for _, sid := range ids {
		pipe.Del(ctx, key(sid))
	}
	pipe.Del(ctx, accountSetKey(accountID))
	_, err = pipe.Exec(ctx)
	return err
}
