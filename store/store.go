package store

import (
	"strconv"
	"time"

	"github.com/hublie/hublie/internal/profile"
	"github.com/hublie/hublie/store/cache"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// Caches for hot, rarely-changing objects.
	householdCache    *cache.Cache // keyed by household UID
	subscriptionCache *cache.Cache // keyed by household ID
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	cacheConfig := cache.Config{
		DefaultTTL:      10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
		MaxItems:        1000,
	}

	return &Store{
		driver:            driver,
		profile:           profile,
		householdCache:    cache.New(cacheConfig),
		subscriptionCache: cache.New(cacheConfig),
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	s.householdCache.Close()
	s.subscriptionCache.Close()
	return s.driver.Close()
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
