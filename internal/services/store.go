package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/config"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/metrics"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
)

// Store is the persistence adapter. Collection reads never fail: a missing
// key, a transport error, or a value that no longer decodes all yield the
// caller's default, with the loss logged and counted. Writes are likewise
// swallowed on failure, so every caller must tolerate a write that did not
// stick.
type Store struct {
	client *redis.Client
	ctx    context.Context

	// mu serializes read-modify-write cycles within this process. Values are
	// whole collection blobs, so interleaved workflow calls would otherwise
	// drop each other's mutations. Across processes the last writer still
	// wins, same as the storage model this service inherits.
	mu sync.Mutex
}

func NewStore(cfg *config.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &Store{client: client, ctx: ctx}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// Lock serializes a read-modify-write cycle; callers pair it with Unlock.
func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// read decodes the value at key into dst and reports whether dst now holds a
// stored value. dst is only trusted when read returns true.
func (s *Store) read(key string, dst any) bool {
	data, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logrus.Warnf("store: read %s failed, using default: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		metrics.StorageCorruption.WithLabelValues(key).Inc()
		logrus.Warnf("store: corrupt value at %s, using default: %v", key, err)
		return false
	}
	return true
}

// write persists value at key. Failures are logged and counted, never
// returned.
func (s *Store) write(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.StorageWriteFailures.WithLabelValues(key).Inc()
		logrus.Errorf("store: marshal %s failed, value dropped: %v", key, err)
		return
	}
	if err := s.client.Set(s.ctx, key, data, 0).Err(); err != nil {
		metrics.StorageWriteFailures.WithLabelValues(key).Inc()
		logrus.Errorf("store: write %s failed, value dropped: %v", key, err)
	}
}

func (s *Store) Users() []models.User {
	var users []models.User
	if !s.read(KeyUsers, &users) {
		return nil
	}
	return users
}

func (s *Store) SaveUsers(users []models.User) {
	s.write(KeyUsers, users)
}

func (s *Store) Orders() []models.Order {
	var orders []models.Order
	if !s.read(KeyOrders, &orders) {
		return nil
	}
	return orders
}

func (s *Store) SaveOrders(orders []models.Order) {
	s.write(KeyOrders, orders)
}

func (s *Store) Deposits() []models.DepositRequest {
	var deposits []models.DepositRequest
	if !s.read(KeyDeposits, &deposits) {
		return nil
	}
	return deposits
}

func (s *Store) SaveDeposits(deposits []models.DepositRequest) {
	s.write(KeyDeposits, deposits)
}

func (s *Store) Settings() models.AppSettings {
	var settings models.AppSettings
	if !s.read(KeySettings, &settings) {
		return models.DefaultSettings()
	}
	return settings
}

func (s *Store) SaveSettings(settings models.AppSettings) {
	s.write(KeySettings, settings)
}

// Sessions are per-client records with a TTL; unlike the collections they
// report errors, because an unreadable session just means "not logged in".

func (s *Store) StoreSession(session *models.UserSession) error {
	key := fmt.Sprintf(KeySession, session.UID, session.SessionID)

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(s.ctx, key, data, TTLSession).Err()
}

func (s *Store) GetSession(uid, sessionID string) (*models.UserSession, error) {
	key := fmt.Sprintf(KeySession, uid, sessionID)

	data, err := s.client.Get(s.ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var session models.UserSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}

	session.LastAccessed = time.Now().Unix()
	updated, _ := json.Marshal(session)
	s.client.Set(s.ctx, key, updated, TTLSession)

	return &session, nil
}

func (s *Store) DeleteSession(uid, sessionID string) error {
	key := fmt.Sprintf(KeySession, uid, sessionID)
	return s.client.Del(s.ctx, key).Err()
}

func (s *Store) CheckRateLimit(identity, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(KeyRateLimit, identity, action)

	count, err := s.client.Incr(s.ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %v", err)
	}

	if count == 1 {
		s.client.Expire(s.ctx, key, window)
	}

	return count <= int64(limit), nil
}

func (s *Store) ClearRateLimit(identity, action string) error {
	key := fmt.Sprintf(KeyRateLimit, identity, action)
	return s.client.Del(s.ctx, key).Err()
}

// DeleteAllData removes the persisted records. Used by the test suites to
// start from a clean slate.
func (s *Store) DeleteAllData() error {
	return s.client.Del(s.ctx, KeyUsers, KeyOrders, KeyDeposits, KeySettings).Err()
}
