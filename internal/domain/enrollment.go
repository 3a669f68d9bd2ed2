package domain

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int64
	Name          string
	IsRemote      bool
	IncludesHotel bool
}

type Ticket struct {
	ID     int64
	Status TicketStatus
	Type   TicketType
}

// Enrollment is a user's event registration. Tickets are ordered by id.
type Enrollment struct {
	ID      int64
	UserID  int64
	Tickets []Ticket
}

// FirstTicket returns the oldest ticket of the enrollment, if any.
func (e *Enrollment) FirstTicket() (Ticket, bool) {
	if e == nil || len(e.Tickets) == 0 {
		return Ticket{}, false
	}
	return e.Tickets[0], true
}

type Session struct {
	ID     int64
	UserID int64
	Token  string
}
