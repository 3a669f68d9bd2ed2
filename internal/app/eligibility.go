package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"event_hotels/internal/adapters/observability"
	"event_hotels/internal/domain"
)

// EligibilityChecker decides whether a user may see hotel data. It reads the
// enrollment fresh on every call; nothing is cached.
type EligibilityChecker struct {
	enrollments domain.EnrollmentReader
}

func NewEligibilityChecker(r domain.EnrollmentReader) *EligibilityChecker {
	return &EligibilityChecker{enrollments: r}
}

// Check returns nil when the user's first ticket is an in-person ticket with
// hotel that has been paid. Otherwise:
//   - no enrollment: KindNotFound
//   - no ticket, remote ticket or ticket without hotel: KindPreconditionFailed
//   - ticket not paid: KindPaymentRequired
func (c *EligibilityChecker) Check(ctx context.Context, userID int64) error {
	err := c.check(ctx, userID)
	outcome := "apt"
	if err != nil {
		outcome = domain.KindOf(err).String()
		if domain.KindOf(err) != domain.KindInternal {
			log.Debug().Int64("user_id", userID).Str("outcome", outcome).Msg("hotel access denied")
		}
	}
	observability.ObserveEligibility(outcome)
	return err
}

func (c *EligibilityChecker) check(ctx context.Context, userID int64) error {
	e, err := c.enrollments.FindEnrollmentByUser(ctx, userID)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.E(domain.KindNotFound, "enrollment not found")
	}

	t, ok := e.FirstTicket()
	if !ok {
		return domain.E(domain.KindPreconditionFailed, "enrollment has no ticket")
	}
	if t.Type.IsRemote || !t.Type.IncludesHotel {
		return domain.E(domain.KindPreconditionFailed, "ticket type does not include hotel")
	}
	if t.Status != domain.TicketPaid {
		return domain.E(domain.KindPaymentRequired, "ticket is not paid")
	}
	return nil
}
