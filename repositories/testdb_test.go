package repositories

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/haniyashafiq/PRO-CRM/cache"
	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB swaps the global database handle for an in-memory sqlite store
// for the duration of the test.
func newTestDB(t *testing.T, tables ...interface{}) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(tables...))

	previous := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = previous })
}

// newTestCache backs the cache with a throwaway redis server.
func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	previous := database.RedisClient
	database.RedisClient = client
	t.Cleanup(func() { database.RedisClient = previous })

	c, err := cache.NewCache()
	require.NoError(t, err)
	return c
}
