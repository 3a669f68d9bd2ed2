package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"event_hotels/internal/domain"
)

// IngestionService pulls hotels from the upstream catalog into the store.
type IngestionService struct {
	catalog domain.CatalogClient
	repo    domain.HotelWriter
	cache   domain.CatalogInvalidator
}

// NewIngestionService: cache may be nil when caching is disabled.
func NewIngestionService(c domain.CatalogClient, r domain.HotelWriter, cache domain.CatalogInvalidator) *IngestionService {
	return &IngestionService{catalog: c, repo: r, cache: cache}
}

func (s *IngestionService) IngestHotel(ctx context.Context, id int64) error {
	p, err := s.catalog.GetHotel(ctx, id)
	if err != nil {
		// 404/401/403 are misses: log, evict, move on.
		switch {
		case domain.KindOf(err) == domain.KindNotFound:
			log.Info().Int64("hotel_id", id).Int("status", 404).Msg("catalog miss")
			s.invalidate(ctx, id)
			return nil
		case errors.Is(err, domain.ErrCatalogDenied):
			log.Warn().Int64("hotel_id", id).Err(err).Msg("catalog miss")
			s.invalidate(ctx, id)
			return nil
		}
		return err
	}

	h := mapHotel(id, p)
	if h.Name == "" {
		return fmt.Errorf("hotel %d: payload has no name", id)
	}

	// Hotel first so rooms satisfy the foreign key.
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return err
	}
	if err := s.repo.UpsertRooms(ctx, h.ID, h.Rooms); err != nil {
		return fmt.Errorf("upsert rooms failed for %d: %w", h.ID, err)
	}
	s.invalidate(ctx, h.ID)

	log.Debug().Int64("hotel_id", h.ID).Int("rooms", len(h.Rooms)).Msg("hotel ingested")
	return nil
}

func (s *IngestionService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateHotel(ctx, id); err != nil {
		log.Warn().Err(err).Int64("hotel_id", id).Msg("cache invalidation failed")
	}
}
