package objectstore

import (
	"testing"

	"github.com/pattaya-dashboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMinioStorage(t *testing.T) {
	logger := zap.NewNop()

	t.Run("missing settings", func(t *testing.T) {
		_, err := NewMinioStorage(&config.S3Config{Endpoint: "localhost:9000"}, logger)
		assert.Error(t, err)
	})

	t.Run("valid settings", func(t *testing.T) {
		s, err := NewMinioStorage(&config.S3Config{
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
		}, logger)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}
