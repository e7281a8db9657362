package cache

import (
	"context"
	"sync"
	"time"

	"kiosk_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockNamespace = "kq:lock:"

// releaseScript deletes KEYS[1] only while it still holds ARGV[1].
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock is a TTL lock shared by every API instance. The stored value is
// the owner token, so an instance only releases locks it took.
type RedisLock struct {
	client *Client
	owner  string
	ttl    time.Duration
}

var _ interfaces.IFinalizationLock = (*RedisLock)(nil)

func NewRedisLock(client *Client, ttl time.Duration) *RedisLock {
	return &RedisLock{client: client, owner: uuid.NewString(), ttl: ttl}
}

func (l *RedisLock) TryLock(ctx context.Context, key string) (bool, error) {
	if l.client == nil || l.client.store == nil {
		return false, errNotInitialized
	}
	return l.client.store.SetNX(ctx, lockNamespace+key, l.owner, l.ttl).Result()
}

// Unlock releases key when this instance still owns it. Expired or foreign
// locks are left alone.
func (l *RedisLock) Unlock(ctx context.Context, key string) error {
	if l.client == nil || l.client.store == nil {
		return errNotInitialized
	}
	return releaseScript.Run(ctx, l.client.store, []string{lockNamespace + key}, l.owner).Err()
}

// LocalLock is the single-instance lock used when redis is disabled.
type LocalLock struct {
	mu   sync.Mutex
	held map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

var _ interfaces.IFinalizationLock = (*LocalLock)(nil)

func NewLocalLock(ttl time.Duration) *LocalLock {
	return &LocalLock{held: map[string]time.Time{}, ttl: ttl, now: time.Now}
}

func (l *LocalLock) TryLock(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if exp, ok := l.held[key]; ok && now.Before(exp) {
		return false, nil
	}
	l.held[key] = now.Add(l.ttl)
	return true, nil
}

func (l *LocalLock) Unlock(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.held, key)
	l.mu.Unlock()
	return nil
}
