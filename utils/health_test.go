package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealthWithoutBackends(t *testing.T) {
	s := CheckHealth(context.Background(), nil, nil)

	assert.True(t, s.Mongo)
	assert.Nil(t, s.Redis)
	assert.False(t, s.CheckedAt.IsZero())
	assert.Equal(t, s, GetHealthStatus())
}
