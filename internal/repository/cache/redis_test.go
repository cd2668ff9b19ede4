package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pattaya-dashboard/internal/config"
	"github.com/pattaya-dashboard/internal/repository/cache"
)

func TestNewRedis_Unreachable(t *testing.T) {
	r, err := cache.NewRedis(&config.RedisConfig{Host: "127.0.0.1", Port: 1}, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
