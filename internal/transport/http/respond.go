package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// reply отдаёт конверт операции или переводит ошибку в HTTP-статус.
// Конверт с status=0 это бизнес-исход, он отдаётся с кодом 200.
func reply[T any](h *Handler, w http.ResponseWriter, r *http.Request, resp domain.Response[T], err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := classify(err)
	entry := h.logger.WithError(err).WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
	if status >= http.StatusInternalServerError {
		entry.Error("order request failed")
	} else {
		entry.Info("order request rejected")
	}
	writeJSON(w, status, domain.Failure[any](msg))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errBadRequest), domain.IsInputError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrStationResolve), errors.Is(err, domain.ErrStationNamesMismatch):
		return http.StatusBadGateway, "station service unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}
