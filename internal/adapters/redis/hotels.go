package redisad

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"event_hotels/internal/domain"
)

const hotelsListKey = "hotels:all"

func hotelKey(id int64) string { return fmt.Sprintf("hotel:%d", id) }

// CachedHotels is a read-through cache in front of the hotel catalog store.
// Cache failures are logged and fall through to the store.
type CachedHotels struct {
	next  domain.HotelReader
	cache domain.Cache
	ttl   time.Duration
}

func NewCachedHotels(next domain.HotelReader, cache domain.Cache, ttl time.Duration) *CachedHotels {
	return &CachedHotels{next: next, cache: cache, ttl: ttl}
}

// HotelReaderFor puts next behind a CachedHotels only when ttl is positive.
// With caching off every read goes to next.
func HotelReaderFor(next domain.HotelReader, cache domain.Cache, ttl time.Duration) domain.HotelReader {
	if ttl <= 0 || cache == nil {
		return next
	}
	return NewCachedHotels(next, cache, ttl)
}

func (c *CachedHotels) FindAllHotels(ctx context.Context) ([]domain.HotelSummary, error) {
	var out []domain.HotelSummary
	if ok, err := c.cache.Get(ctx, hotelsListKey, &out); err != nil {
		log.Warn().Err(err).Str("key", hotelsListKey).Msg("hotel cache read failed")
	} else if ok && out != nil {
		return out, nil
	}

	hs, err := c.next.FindAllHotels(ctx)
	if err != nil || hs == nil {
		return hs, err
	}
	if err := c.cache.Set(ctx, hotelsListKey, hs, int(c.ttl.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", hotelsListKey).Msg("hotel cache write failed")
	}
	return hs, nil
}

// FindHotelByID never caches an absent hotel.
func (c *CachedHotels) FindHotelByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	key := hotelKey(id)
	var h domain.Hotel
	if ok, err := c.cache.Get(ctx, key, &h); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("hotel cache read failed")
	} else if ok {
		return &h, nil
	}

	hp, err := c.next.FindHotelByID(ctx, id)
	if err != nil || hp == nil {
		return hp, err
	}
	if err := c.cache.Set(ctx, key, hp, int(c.ttl.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("hotel cache write failed")
	}
	return hp, nil
}

// InvalidateHotel drops the hotel entry and the catalog listing.
func (c *CachedHotels) InvalidateHotel(ctx context.Context, id int64) error {
	return c.cache.Del(ctx, hotelKey(id), hotelsListKey)
}
