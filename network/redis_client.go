package network

import (
	"fmt"
	"time"

	"github.com/Cece94/articguessr/models/service"
	"github.com/go-redis/redis/v7"
)

// RedisClient caches scroll sessions so a page reload within the
// freshness window restores the feed without refetching every page.
// Expiry is enforced by redis TTL; a session past its window is simply
// gone and the caller starts a fresh fetch.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(address, password string, db int, ttl time.Duration) *RedisClient {
	return &RedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     address,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (c *RedisClient) Ping() (string, error) {
	return c.client.Ping().Result()
}

func scrollSessionKey(sessionID string) string {
	return fmt.Sprintf("scroll:%s", sessionID)
}

func (c *RedisClient) ScrollSessionGet(sessionID string) (*service.ScrollSession, error) {
	data, err := c.client.Get(scrollSessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("ScrollSessionGet (%s): %s", sessionID, err.Error())
	}
	return service.ScrollSessionFromJson(data)
}

func (c *RedisClient) ScrollSessionSave(sess *service.ScrollSession) error {
	sess.SavedAt = time.Now().UTC()
	jsonData, err := sess.ToJson()
	if err != nil {
		return err
	}
	_, err = c.client.Set(scrollSessionKey(sess.ID), jsonData, c.ttl).Result()
	return err
}

func (c *RedisClient) ScrollSessionDelete(sessionID string) error {
	_, err := c.client.Del(scrollSessionKey(sessionID)).Result()
	return err
}
