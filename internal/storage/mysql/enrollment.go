package mysql

import (
	"context"
	"database/sql"
	"errors"

	"event_hotels/internal/domain"
)

// FindEnrollmentByUser reads the user's enrollment and its tickets (with
// ticket types) on a single pooled connection, released before returning.
// (nil, nil) when the user has no enrollment.
func (r *Repo) FindEnrollmentByUser(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query, args, err := enrollmentByUserQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}
	var e domain.Enrollment
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	query, args, err = ticketsByEnrollmentQuery(e.ID).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t      domain.Ticket
			status string
		)
		if err := rows.Scan(&t.ID, &status, &t.Type.ID, &t.Type.Name, &t.Type.IsRemote, &t.Type.IncludesHotel); err != nil {
			return nil, err
		}
		t.Status = domain.TicketStatus(status)
		e.Tickets = append(e.Tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &e, nil
}

// FindSessionByToken returns (nil, nil) when no session holds the token.
func (r *Repo) FindSessionByToken(ctx context.Context, token string) (*domain.Session, error) {
	query, args, err := sessionByTokenQuery(token).ToSql()
	if err != nil {
		return nil, err
	}
	var s domain.Session
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.UserID, &s.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
