// Package mysqltest starts a throwaway MySQL in Docker for integration tests
// and seeds rows through plain SQL.
package mysqltest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"event_hotels/internal/domain"
	"event_hotels/migrations"
)

// Start runs MySQL 8, applies the embedded migrations and returns a ready pool.
// The test is skipped when no Docker daemon is reachable.
func Start(t testing.TB) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=hotels",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Seeder inserts fixture rows and fails the test on any error.
type Seeder struct {
	T  testing.TB
	DB *sql.DB
}

func (s Seeder) exec(q string, args ...any) int64 {
	s.T.Helper()
	res, err := s.DB.ExecContext(context.Background(), q, args...)
	if err != nil {
		s.T.Fatalf("seed %q: %v", q, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		s.T.Fatalf("seed last id: %v", err)
	}
	return id
}

func (s Seeder) User(email string) int64 {
	return s.exec(`INSERT INTO users (email, password) VALUES (?, ?)`, email, "x")
}

func (s Seeder) Session(userID int64, token string) int64 {
	return s.exec(`INSERT INTO sessions (user_id, token) VALUES (?, ?)`, userID, token)
}

func (s Seeder) Enrollment(userID int64) int64 {
	return s.exec(`INSERT INTO enrollments (user_id, name) VALUES (?, ?)`, userID, "attendee")
}

func (s Seeder) TicketType(remote, includesHotel bool) int64 {
	return s.exec(`INSERT INTO ticket_types (name, price, is_remote, includes_hotel) VALUES (?, ?, ?, ?)`,
		"ticket", 250, remote, includesHotel)
}

func (s Seeder) Ticket(enrollmentID, typeID int64, status domain.TicketStatus) int64 {
	return s.exec(`INSERT INTO tickets (ticket_type_id, enrollment_id, status) VALUES (?, ?, ?)`,
		typeID, enrollmentID, string(status))
}

func (s Seeder) Hotel(name, image string) int64 {
	return s.exec(`INSERT INTO hotels (name, image) VALUES (?, ?)`, name, image)
}

func (s Seeder) Room(hotelID int64, name string, capacity int) int64 {
	return s.exec(`INSERT INTO rooms (name, capacity, hotel_id) VALUES (?, ?, ?)`, name, capacity, hotelID)
}

// Attendee seeds a user with an enrollment holding one ticket and returns the user id.
func (s Seeder) Attendee(email string, remote, includesHotel bool, status domain.TicketStatus) int64 {
	s.T.Helper()
	uid := s.User(email)
	eid := s.Enrollment(uid)
	s.Ticket(eid, s.TicketType(remote, includesHotel), status)
	return uid
}
