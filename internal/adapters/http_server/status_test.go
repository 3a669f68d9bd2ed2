package httpserver

import (
	"net/http"
	"testing"

	"event_hotels/internal/domain"
)

func TestStatusFor_CoversEveryKind(t *testing.T) {
	want := map[domain.Kind]int{
		domain.KindInternal:           http.StatusInternalServerError,
		domain.KindBadRequest:         http.StatusBadRequest,
		domain.KindNotFound:           http.StatusNotFound,
		domain.KindPreconditionFailed: http.StatusPreconditionFailed,
		domain.KindPaymentRequired:    http.StatusPaymentRequired,
	}
	for _, k := range domain.Kinds {
		got, ok := want[k]
		if !ok {
			t.Fatalf("kind %s has no expected status", k)
		}
		if s := statusFor(k); s != got {
			t.Fatalf("statusFor(%s) = %d, want %d", k, s, got)
		}
	}
}
