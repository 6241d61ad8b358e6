package sensors_crud

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
	msgInvalidSensorID     = "некорректный ID сенсора"
	msgInvalidSpaceID      = "некорректный ID места"
	msgNotFound            = "сенсор не найден"
	msgInvalidBody         = "некорректное тело запроса"
	msgDuplicateHardwareID = "аппаратный ID уже зарегистрирован"
)

type Handler struct {
	service SensorService
	logger  Logger
}

func NewHandler(service SensorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/sensors
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSensorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sensors - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	sensor, err := h.service.CreateSensor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sensors.ErrDuplicateHardwareID):
			h.logger.Warn("POST /sensors - Duplicate hardware ID: hardware_id=%s", req.HardwareID)
			handlers.RespondBadRequest(w, msgDuplicateHardwareID)

		case errors.Is(err, sensors.ErrInvalidInput):
			h.logger.Warn("POST /sensors - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /sensors - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sensors - Sensor created: sensor_id=%d", sensor.ID)
	handlers.RespondJSON(w, http.StatusCreated, sensor)
}

// HandleGet GET /api/v1/sensors/{sensorId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sensorID, ok := h.sensorID(w, r)
	if !ok {
		return
	}

	sensor, err := h.service.GetSensor(r.Context(), sensorID)
	if err != nil {
		h.respondError(w, sensorID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sensor)
}

// HandleList GET /api/v1/sensors
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := models.ListSensorsRequest{}

	if v := r.URL.Query().Get("spaceId"); v != "" {
		spaceID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /sensors - Invalid space ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpaceID)
			return
		}
		req.SpaceID = &spaceID
	}

	list, err := h.service.ListSensors(r.Context(), &req)
	if err != nil {
		h.logger.Error("GET /sensors - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleUpdate PUT /api/v1/sensors/{sensorId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sensorID, ok := h.sensorID(w, r)
	if !ok {
		return
	}

	var req models.UpdateSensorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sensors/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	sensor, err := h.service.UpdateSensor(r.Context(), sensorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, sensors.ErrDuplicateHardwareID):
			h.logger.Warn("PUT /sensors/{id} - Duplicate hardware ID: sensor_id=%d", sensorID)
			handlers.RespondBadRequest(w, msgDuplicateHardwareID)

		case errors.Is(err, sensors.ErrInvalidInput):
			h.logger.Warn("PUT /sensors/{id} - Validation failed: sensor_id=%d, error=%v", sensorID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.respondError(w, sensorID, err)
		}
		return
	}

	h.logger.Info("PUT /sensors/{id} - Sensor updated: sensor_id=%d", sensorID)
	handlers.RespondJSON(w, http.StatusOK, sensor)
}

// HandleDelete DELETE /api/v1/sensors/{sensorId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sensorID, ok := h.sensorID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSensor(r.Context(), sensorID); err != nil {
		h.respondError(w, sensorID, err)
		return
	}

	h.logger.Info("DELETE /sensors/{id} - Sensor deleted: sensor_id=%d", sensorID)
	handlers.RespondNoContent(w)
}

func (h *Handler) sensorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	sensorID, err := strconv.ParseInt(mux.Vars(r)["sensorId"], 10, 64)
	if err != nil {
		h.logger.Warn("Sensors - Invalid sensor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSensorID)
		return 0, false
	}
	return sensorID, true
}

func (h *Handler) respondError(w http.ResponseWriter, sensorID int64, err error) {
	switch {
	case errors.Is(err, sensors.ErrSensorNotFound):
		h.logger.Warn("Sensors - Sensor not found: sensor_id=%d", sensorID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Sensors - Failed: sensor_id=%d, error=%v", sensorID, err)
		handlers.RespondInternalError(w)
	}
}
