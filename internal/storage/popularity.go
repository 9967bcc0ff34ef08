package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// PopularOrderThreshold is the all-time ordered-unit count at which a dish
// earns its popular badge on the menu.
const PopularOrderThreshold = 50

// PopularityStore tracks how often dishes get ordered: per-day and all-time
// sorted sets in Redis, with the is_popular flag written back to Postgres
// once a dish crosses the threshold.
type PopularityStore struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewPopularityStore(db *sql.DB, rdb *redis.Client) *PopularityStore {
	return &PopularityStore{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *PopularityStore) RecordDishOrdered(dishID, restaurantID, quantity int) error {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("popularity:daily:%s:%d", today, restaurantID)
	if err := s.rdb.ZIncrBy(s.ctx, dailyKey, float64(quantity), strconv.Itoa(dishID)).Err(); err != nil {
		log.Printf("Error updating daily popularity for dish %d: %v", dishID, err)
	}
	if err := s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour).Err(); err != nil {
		log.Printf("Error refreshing expiry on %s: %v", dailyKey, err)
	}

	allTimeKey := fmt.Sprintf("popularity:alltime:%d", restaurantID)
	total, err := s.rdb.ZIncrBy(s.ctx, allTimeKey, float64(quantity), strconv.Itoa(dishID)).Result()
	if err != nil {
		return err
	}

	if total >= PopularOrderThreshold {
		if _, err := s.db.Exec(`
			UPDATE dishes SET is_popular = TRUE
			WHERE id = $1 AND restaurant_id = $2 AND NOT is_popular
		`, dishID, restaurantID); err != nil {
			return err
		}
	}
	return nil
}
