package cache

import (
	"flight-route-service/internal/domain"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRURouteCacheCopiesResults(t *testing.T) {
	c := NewLRURouteCache(8, time.Minute)

	in := domain.RouteResult{Found: true, Waypoints: []string{"A", "B"}, Cost: 400}
	c.Put("k", in)
	in.Waypoints[0] = "X"

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, got.Waypoints)

	got.Waypoints[1] = "Y"
	again, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, again.Waypoints)
}

func TestLRURouteCacheEvictsOldest(t *testing.T) {
	c := NewLRURouteCache(2, time.Minute)
	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprint(i), domain.NoRoute())
	}

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("0")
	assert.False(t, ok)
	_, ok = c.Get("2")
	assert.True(t, ok)
}
