package rdx

import (
	"log"
	"time"

	"mobitrack/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	Conn = redis.NewClient(&redis.Options{
		Addr: globals.GetEnv("REDIS_ADDR", "localhost:6379"),
	})
}

// RdxSet stores a value with a TTL.
func RdxSet(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

// RdxGet returns "" on a miss or error; callers fall through to Mongo.
func RdxGet(key string) string {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

func RdxDel(key string) {
	if err := Conn.Del(globals.Ctx, key).Err(); err != nil {
		log.Printf("RdxDel: failed for key %s, err=%v", key, err)
	}
}

// Token revocation set used by logout. A revoked token stays blocked until
// it would have expired anyway.
func RevokeToken(token string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, "revoked:"+token, "1", ttl).Err()
}

func IsTokenRevoked(token string) bool {
	val, err := Conn.Get(globals.Ctx, "revoked:"+token).Result()
	return err == nil && val == "1"
}
