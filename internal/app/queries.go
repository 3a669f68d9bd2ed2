package app

import (
	"context"
	"strconv"
	"strings"

	"event_hotels/internal/domain"
)

type HotelService struct {
	eligibility *EligibilityChecker
	hotels      domain.HotelReader
}

func NewHotelService(e *EligibilityChecker, hotels domain.HotelReader) *HotelService {
	return &HotelService{eligibility: e, hotels: hotels}
}

func (s *HotelService) ListHotels(ctx context.Context, userID int64) ([]domain.HotelSummary, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}
	hs, err := s.hotels.FindAllHotels(ctx)
	if err != nil {
		return nil, err
	}
	// nil means the store had nothing to answer with; an empty slice is a valid empty catalog.
	if hs == nil {
		return nil, domain.E(domain.KindNotFound, "hotels not found")
	}
	return hs, nil
}

// GetHotel validates rawID before running the eligibility check, so a
// malformed id is always a bad request whatever the caller's ticket.
func (s *HotelService) GetHotel(ctx context.Context, userID int64, rawID string) (domain.HotelDetail, error) {
	id, err := ParseHotelID(rawID)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return domain.HotelDetail{}, err
	}
	h, err := s.hotels.FindHotelByID(ctx, id)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	if h == nil {
		return domain.HotelDetail{}, domain.E(domain.KindNotFound, "hotel not found")
	}
	return toHotelDetail(h), nil
}

// ParseHotelID accepts non-negative base-10 integers. Zero parses and simply
// matches no hotel.
func ParseHotelID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &domain.Error{Kind: domain.KindBadRequest, Msg: "hotelId must be an integer", Err: err}
	}
	if id < 0 {
		return 0, domain.E(domain.KindBadRequest, "hotelId must not be negative")
	}
	return id, nil
}
