package domain

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"
	"errors"
)

// HotelReader is the catalog read side. FindHotelByID returns (nil, nil) when absent.
type HotelReader interface {
	FindAllHotels(ctx context.Context) ([]HotelSummary, error)
	FindHotelByID(ctx context.Context, id int64) (*Hotel, error)
}

type HotelWriter interface {
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertRooms(ctx context.Context, hotelID int64, rooms []Room) error
}

// EnrollmentReader returns (nil, nil) when the user has no enrollment.
type EnrollmentReader interface {
	FindEnrollmentByUser(ctx context.Context, userID int64) (*Enrollment, error)
}

// SessionReader returns (nil, nil) when no session holds the token.
type SessionReader interface {
	FindSessionByToken(ctx context.Context, token string) (*Session, error)
}

type CatalogClient interface {
	GetHotel(ctx context.Context, id int64) (map[string]any, error)
}

type CatalogInvalidator interface {
	InvalidateHotel(ctx context.Context, id int64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, keys ...string) error
}

// ErrCatalogDenied is returned by a CatalogClient when the upstream refuses access (401/403).
var ErrCatalogDenied = errors.New("catalog: access denied")
