package db

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Storing cache keys in concurrent data structures so every cached report for
// a user can be dropped when that user writes a record.
var (
	Cache             *ristretto.Cache
	ForecastCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	SummaryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// ForecastCacheKey includes the reference date so a cached projection expires
// naturally at midnight.
func ForecastCacheKey(userID int, referenceDate string, horizonDays int) string {
	return fmt.Sprintf("forecast:%d:%s:%d", userID, referenceDate, horizonDays)
}

func SummaryCacheKey(userID int, year string) string {
	return fmt.Sprintf("summary:%d:%s", userID, year)
}

// Forecast Cache Functions
func SetForecastCache(cacheKey string, value interface{}) {
	ForecastCacheKeys.Lock()
	ForecastCacheKeys.m[cacheKey] = struct{}{}
	ForecastCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

// Summary Cache Functions
func SetSummaryCache(cacheKey string, value interface{}) {
	SummaryCacheKeys.Lock()
	SummaryCacheKeys.m[cacheKey] = struct{}{}
	SummaryCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

// ClearUserReportCaches drops every cached forecast and summary for a user.
// Called after any income, expense, or category write.
func ClearUserReportCaches(userID int) {
	forecastPrefix := fmt.Sprintf("forecast:%d:", userID)
	summaryPrefix := fmt.Sprintf("summary:%d:", userID)

	ForecastCacheKeys.Lock()
	for key := range ForecastCacheKeys.m {
		if strings.HasPrefix(key, forecastPrefix) {
			Cache.Del(key)
			delete(ForecastCacheKeys.m, key)
		}
	}
	ForecastCacheKeys.Unlock()

	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		if strings.HasPrefix(key, summaryPrefix) {
			Cache.Del(key)
			delete(SummaryCacheKeys.m, key)
		}
	}
	SummaryCacheKeys.Unlock()
}

func ClearAllReportCaches() {
	ForecastCacheKeys.Lock()
	for key := range ForecastCacheKeys.m {
		Cache.Del(key)
	}
	ForecastCacheKeys.m = make(map[string]struct{})
	ForecastCacheKeys.Unlock()

	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		Cache.Del(key)
	}
	SummaryCacheKeys.m = make(map[string]struct{})
	SummaryCacheKeys.Unlock()
}
