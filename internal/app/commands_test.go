package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"event_hotels/internal/app"
	"event_hotels/internal/domain"
	"event_hotels/internal/domain/mocks"
)

type ingestFixture struct {
	catalog *mocks.MockCatalogClient
	writer  *mocks.MockHotelWriter
	cache   *mocks.MockCatalogInvalidator
	svc     *app.IngestionService
}

func newIngestFixture(t *testing.T) ingestFixture {
	ctrl := gomock.NewController(t)
	f := ingestFixture{
		catalog: mocks.NewMockCatalogClient(ctrl),
		writer:  mocks.NewMockHotelWriter(ctrl),
		cache:   mocks.NewMockCatalogInvalidator(ctrl),
	}
	f.svc = app.NewIngestionService(f.catalog, f.writer, f.cache)
	return f
}

func TestIngestHotel_UpsertsHotelThenRooms(t *testing.T) {
	f := newIngestFixture(t)
	f.catalog.EXPECT().GetHotel(gomock.Any(), int64(9)).Return(map[string]any{
		"hotel_id":   float64(9),
		"hotel_name": "Harbour View",
		"photos":     []any{map[string]any{"url": "https://img/9.png"}},
		"rooms": []any{
			map[string]any{"room_id": "91", "room_name": "Deluxe", "max_occupancy": float64(2)},
			map[string]any{"name": "Single"},
		},
	}, nil)

	gomock.InOrder(
		f.writer.EXPECT().UpsertHotel(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h domain.Hotel) error {
			assert.Equal(t, int64(9), h.ID)
			assert.Equal(t, "Harbour View", h.Name)
			assert.Equal(t, "https://img/9.png", h.Image)
			return nil
		}),
		f.writer.EXPECT().UpsertRooms(gomock.Any(), int64(9), []domain.Room{
			{ID: 91, Name: "Deluxe", Capacity: 2, HotelID: 9},
			{Name: "Single", Capacity: 1, HotelID: 9},
		}).Return(nil),
		f.cache.EXPECT().InvalidateHotel(gomock.Any(), int64(9)).Return(nil),
	)

	require.NoError(t, f.svc.IngestHotel(context.Background(), 9))
}

func TestIngestHotel_MissesAreNotErrors(t *testing.T) {
	cases := map[string]error{
		"not found": domain.E(domain.KindNotFound, "catalog: hotel not found"),
		"forbidden": fmt.Errorf("%w: status 403", domain.ErrCatalogDenied),
	}
	for name, upstream := range cases {
		t.Run(name, func(t *testing.T) {
			f := newIngestFixture(t)
			f.catalog.EXPECT().GetHotel(gomock.Any(), int64(4)).Return(nil, upstream)
			f.cache.EXPECT().InvalidateHotel(gomock.Any(), int64(4)).Return(nil)

			assert.NoError(t, f.svc.IngestHotel(context.Background(), 4))
		})
	}
}

func TestIngestHotel_UpstreamFailureSurfaces(t *testing.T) {
	f := newIngestFixture(t)
	boom := errors.New("status 502")
	f.catalog.EXPECT().GetHotel(gomock.Any(), int64(4)).Return(nil, boom)

	assert.ErrorIs(t, f.svc.IngestHotel(context.Background(), 4), boom)
}

func TestIngestHotel_NamelessPayloadRejected(t *testing.T) {
	f := newIngestFixture(t)
	f.catalog.EXPECT().GetHotel(gomock.Any(), int64(4)).Return(map[string]any{"id": float64(4)}, nil)

	assert.Error(t, f.svc.IngestHotel(context.Background(), 4))
}

func TestIngestHotel_RoomFailureWrapped(t *testing.T) {
	f := newIngestFixture(t)
	f.catalog.EXPECT().GetHotel(gomock.Any(), int64(4)).Return(map[string]any{
		"name":  "Inn",
		"rooms": []any{map[string]any{"name": "1"}},
	}, nil)
	f.writer.EXPECT().UpsertHotel(gomock.Any(), gomock.Any()).Return(nil)
	dbErr := errors.New("deadlock")
	f.writer.EXPECT().UpsertRooms(gomock.Any(), int64(4), gomock.Any()).Return(dbErr)

	err := f.svc.IngestHotel(context.Background(), 4)
	assert.ErrorIs(t, err, dbErr)
}

func TestIngestHotel_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogClient(ctrl)
	writer := mocks.NewMockHotelWriter(ctrl)
	catalog.EXPECT().GetHotel(gomock.Any(), int64(2)).Return(map[string]any{"name": "Inn"}, nil)
	writer.EXPECT().UpsertHotel(gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().UpsertRooms(gomock.Any(), int64(2), gomock.Any()).Return(nil)

	svc := app.NewIngestionService(catalog, writer, nil)
	assert.NoError(t, svc.IngestHotel(context.Background(), 2))
}
