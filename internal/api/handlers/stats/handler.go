package stats

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleSummary GET /api/v1/stats/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("GET /stats/summary - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

// HandleSeries GET /api/v1/stats/reservations-7d
func (h *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.ReservationsLast7Days(r.Context())
	if err != nil {
		h.logger.Error("GET /stats/reservations-7d - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, series)
}
