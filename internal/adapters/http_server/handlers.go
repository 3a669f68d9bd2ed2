package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"event_hotels/internal/adapters/auth"
	"event_hotels/internal/app"
	"event_hotels/internal/domain"
)

type Handlers struct {
	Svc  *app.HotelService
	Auth Authenticator
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Group(func(r chi.Router) {
		r.Use(Auth(h.Auth))
		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{hotelId}", h.getHotel)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal response failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write response body failed")
	}
}

// statusFor maps every error kind to its HTTP status.
func statusFor(k domain.Kind) int {
	switch k {
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindPreconditionFailed:
		return http.StatusPreconditionFailed
	case domain.KindPaymentRequired:
		return http.StatusPaymentRequired
	case domain.KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	k := domain.KindOf(err)
	status := statusFor(k)
	if k == domain.KindInternal {
		// storage details stay in the log
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, status, http.StatusText(status), "")
		return
	}
	writeProblem(w, status, http.StatusText(status), err.Error())
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserID(r.Context())
	out, err := h.Svc.ListHotels(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserID(r.Context())
	out, err := h.Svc.GetHotel(r.Context(), uid, chi.URLParam(r, "hotelId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, out)
}
