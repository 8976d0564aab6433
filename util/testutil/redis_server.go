package testutil

import (
	"time"

	"github.com/alicebob/miniredis/v2"
)

// RedisServer wraps an in-process miniredis instance for cache tests.
type RedisServer struct {
	server *miniredis.Miniredis
}

func NewRedisServer() *RedisServer {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	return &RedisServer{
		server: server,
	}
}

func (s *RedisServer) Addr() string {
	return s.server.Addr()
}

// FastForward advances miniredis' clock so TTL expiry can be tested
// without sleeping.
func (s *RedisServer) FastForward(d time.Duration) {
	s.server.FastForward(d)
}

func (s *RedisServer) Close() {
	s.server.Close()
}
