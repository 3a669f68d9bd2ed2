package mysql

import sq "github.com/Masterminds/squirrel"

// -----------------------------------------------------------------------------
// WRITE STATEMENTS (ingestion)
// -----------------------------------------------------------------------------

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, image)
VALUES
  (?, ?, ?)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  image      = VALUES(image),
  updated_at = CURRENT_TIMESTAMP
`

const insertRoomsPrefix = "INSERT INTO rooms\n  (id, name, capacity, hotel_id)\nVALUES "

// A room never changes hotel: a colliding upstream id from another hotel leaves the row as is.
const insertRoomsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  name       = IF(hotel_id = VALUES(hotel_id), VALUES(name), name),\n" +
	"  capacity   = IF(hotel_id = VALUES(hotel_id), VALUES(capacity), capacity),\n" +
	"  updated_at = IF(hotel_id = VALUES(hotel_id), CURRENT_TIMESTAMP, updated_at)\n"

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

func listHotelsQuery() sq.SelectBuilder {
	return sq.Select("id", "name", "image").
		From("hotels").
		OrderBy("id")
}

func hotelByIDQuery(id int64) sq.SelectBuilder {
	return sq.Select("id", "name", "image", "created_at", "updated_at").
		From("hotels").
		Where(sq.Eq{"id": id}).
		Limit(1)
}

func roomsByHotelQuery(hotelID int64) sq.SelectBuilder {
	return sq.Select("id", "name", "capacity", "hotel_id", "created_at", "updated_at").
		From("rooms").
		Where(sq.Eq{"hotel_id": hotelID}).
		OrderBy("id")
}

// A user has at most one enrollment; ORDER BY keeps "first" well defined anyway.
func enrollmentByUserQuery(userID int64) sq.SelectBuilder {
	return sq.Select("id", "user_id").
		From("enrollments").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		Limit(1)
}

func ticketsByEnrollmentQuery(enrollmentID int64) sq.SelectBuilder {
	return sq.Select("t.id", "t.status", "tt.id", "tt.name", "tt.is_remote", "tt.includes_hotel").
		From("tickets t").
		Join("ticket_types tt ON tt.id = t.ticket_type_id").
		Where(sq.Eq{"t.enrollment_id": enrollmentID}).
		OrderBy("t.id")
}

func sessionByTokenQuery(token string) sq.SelectBuilder {
	return sq.Select("id", "user_id", "token").
		From("sessions").
		Where(sq.Eq{"token": token}).
		Limit(1)
}
