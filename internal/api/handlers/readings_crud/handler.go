package readings_crud

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/sensors"
	"github.com/m04kA/SMC-ParkingService/internal/service/sensors/models"
)

const (
	msgInvalidReadingID = "некорректный ID показания"
	msgInvalidSensorID  = "некорректный ID сенсора"
	msgInvalidLimit     = "некорректное значение limit"
	msgNotFound         = "показание не найдено"
	msgSensorNotFound   = "сенсор не найден"
	msgInvalidBody      = "некорректное тело запроса"
)

type Handler struct {
	service ReadingService
	logger  Logger
}

func NewHandler(service ReadingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/readings
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReadingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /readings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	reading, err := h.service.CreateReading(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sensors.ErrSensorNotFound):
			h.logger.Warn("POST /readings - Sensor not found: sensor_id=%d", req.SensorID)
			handlers.RespondBadRequest(w, msgSensorNotFound)

		case errors.Is(err, sensors.ErrInvalidInput):
			h.logger.Warn("POST /readings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /readings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /readings - Reading stored: reading_id=%d, sensor_id=%d", reading.ID, reading.SensorID)
	handlers.RespondJSON(w, http.StatusCreated, reading)
}

// HandleGet GET /api/v1/readings/{readingId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	readingID, ok := h.readingID(w, r)
	if !ok {
		return
	}

	reading, err := h.service.GetReading(r.Context(), readingID)
	if err != nil {
		h.respondError(w, readingID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reading)
}

// HandleList GET /api/v1/readings
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := models.ListReadingsRequest{}

	query := r.URL.Query()
	if v := query.Get("sensorId"); v != "" {
		sensorID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /readings - Invalid sensor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSensorID)
			return
		}
		req.SensorID = &sensorID
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /readings - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	list, err := h.service.ListReadings(r.Context(), &req)
	if err != nil {
		h.logger.Error("GET /readings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleDelete DELETE /api/v1/readings/{readingId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	readingID, ok := h.readingID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReading(r.Context(), readingID); err != nil {
		h.respondError(w, readingID, err)
		return
	}

	h.logger.Info("DELETE /readings/{id} - Reading deleted: reading_id=%d", readingID)
	handlers.RespondNoContent(w)
}

func (h *Handler) readingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	readingID, err := strconv.ParseInt(mux.Vars(r)["readingId"], 10, 64)
	if err != nil {
		h.logger.Warn("Readings - Invalid reading ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReadingID)
		return 0, false
	}
	return readingID, true
}

func (h *Handler) respondError(w http.ResponseWriter, readingID int64, err error) {
	switch {
	case errors.Is(err, sensors.ErrReadingNotFound):
		h.logger.Warn("Readings - Reading not found: reading_id=%d", readingID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Readings - Failed: reading_id=%d, error=%v", readingID, err)
		handlers.RespondInternalError(w)
	}
}
