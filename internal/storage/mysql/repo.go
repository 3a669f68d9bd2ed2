package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"event_hotels/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// FindAllHotels returns every hotel reduced to its summary. The slice is
// never nil on success, so an empty catalog is distinguishable from "absent".
func (r *Repo) FindAllHotels(ctx context.Context) ([]domain.HotelSummary, error) {
	query, args, err := listHotelsQuery().ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.HotelSummary, 0)
	for rows.Next() {
		var h domain.HotelSummary
		if err := rows.Scan(&h.ID, &h.Name, &h.Image); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindHotelByID loads one hotel with its rooms; (nil, nil) when no row matches.
func (r *Repo) FindHotelByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	query, args, err := hotelByIDQuery(id).ToSql()
	if err != nil {
		return nil, err
	}
	var h domain.Hotel
	if err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rooms, err := r.roomsByHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	h.Rooms = rooms
	return &h, nil
}

func (r *Repo) roomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	query, args, err := roomsByHotelQuery(hotelID).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, upsertHotelSQL, h.ID, h.Name, h.Image)
	return err
}

// UpsertRooms writes all rooms of a hotel in one statement. Rooms without an
// upstream id get an auto-increment id.
func (r *Repo) UpsertRooms(ctx context.Context, hotelID int64, rooms []domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	values := make([]string, 0, len(rooms))
	args := make([]any, 0, len(rooms)*4)
	for _, rm := range rooms {
		values = append(values, "(?,?,?,?)")
		var id any
		if rm.ID > 0 {
			id = rm.ID
		}
		args = append(args, id, rm.Name, rm.Capacity, hotelID)
	}
	sqlStr := insertRoomsPrefix + strings.Join(values, ",") + insertRoomsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}
