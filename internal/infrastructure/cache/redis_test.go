package cache

import (
	"testing"

	"dental-clinic-api/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	log, _ := test.NewNullLogger()

	client, err := NewRedisClient(config.RedisConfig{Host: mr.Host(), Port: mr.Port()}, log)
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	_, err = NewRedisClient(config.RedisConfig{Host: mr.Host(), Port: mr.Port()}, log)
	assert.Error(t, err)
}
