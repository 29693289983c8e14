package syncbus

import (
	"context"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Channel is the redis pub/sub channel carrying key-change messages
// between processes sharing the same backing store. Messages are
// "originID|key"; the origin id lets a process skip its own writes,
// which it already announced synchronously.
const Channel = "filmreel:storage:changes"

// Message formats a change message for publication.
func Message(origin, key string) string {
	return origin + "|" + key
}

// RedisRelay pipes change messages published by other processes into
// the local bus. It is the cross-context transport of the bridge.
type RedisRelay struct {
	pubsub *redis.PubSub
	done   chan struct{}
}

// NewRedisRelay starts relaying foreign-origin changes from rdb into bus.
func NewRedisRelay(ctx context.Context, rdb *redis.Client, bus *Bus, origin string) *RedisRelay {
	r := &RedisRelay{
		pubsub: rdb.Subscribe(ctx, Channel),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(r.done)
		for msg := range r.pubsub.Channel() {
			from, key, ok := strings.Cut(msg.Payload, "|")
			if !ok || from == origin {
				continue
			}
			slog.Debug("remote storage change", "key", key, "origin", from)
			bus.Announce(key)
		}
	}()

	return r
}

// Close stops the relay and waits for the goroutine to drain.
func (r *RedisRelay) Close() error {
	err := r.pubsub.Close()
	<-r.done
	return err
}
