package vehicles_crud

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles/models"
)

const (
	msgInvalidVehicleID = "некорректный ID транспорта"
	msgInvalidUserID    = "некорректный ID пользователя"
	msgNotFound         = "транспорт не найден"
	msgInvalidBody      = "некорректное тело запроса"
	msgDuplicatePlate   = "номер уже зарегистрирован"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/vehicles
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	vehicle, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrDuplicatePlate):
			h.logger.Warn("POST /vehicles - Duplicate plate: plate=%s", req.Plate)
			handlers.RespondBadRequest(w, msgDuplicatePlate)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /vehicles - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: vehicle_id=%d", vehicle.ID)
	handlers.RespondJSON(w, http.StatusCreated, vehicle)
}

// HandleGet GET /api/v1/vehicles/{vehicleId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := h.vehicleID(w, r)
	if !ok {
		return
	}

	vehicle, err := h.service.GetByID(r.Context(), vehicleID)
	if err != nil {
		h.respondError(w, vehicleID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, vehicle)
}

// HandleList GET /api/v1/vehicles
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := models.ListVehiclesRequest{}

	if v := r.URL.Query().Get("userId"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /vehicles - Invalid user ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		req.UserID = &userID
	}

	list, err := h.service.List(r.Context(), &req)
	if err != nil {
		h.logger.Error("GET /vehicles - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleUpdate PUT /api/v1/vehicles/{vehicleId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := h.vehicleID(w, r)
	if !ok {
		return
	}

	var req models.UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	vehicle, err := h.service.Update(r.Context(), vehicleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrDuplicatePlate):
			h.logger.Warn("PUT /vehicles/{id} - Duplicate plate: vehicle_id=%d", vehicleID)
			handlers.RespondBadRequest(w, msgDuplicatePlate)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("PUT /vehicles/{id} - Validation failed: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.respondError(w, vehicleID, err)
		}
		return
	}

	h.logger.Info("PUT /vehicles/{id} - Vehicle updated: vehicle_id=%d", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, vehicle)
}

// HandleDelete DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := h.vehicleID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), vehicleID); err != nil {
		h.respondError(w, vehicleID, err)
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted: vehicle_id=%d", vehicleID)
	handlers.RespondNoContent(w)
}

func (h *Handler) vehicleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vehicleID, err := strconv.ParseInt(mux.Vars(r)["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("Vehicles - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return 0, false
	}
	return vehicleID, true
}

func (h *Handler) respondError(w http.ResponseWriter, vehicleID int64, err error) {
	switch {
	case errors.Is(err, vehicles.ErrVehicleNotFound):
		h.logger.Warn("Vehicles - Vehicle not found: vehicle_id=%d", vehicleID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Vehicles - Failed: vehicle_id=%d, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
	}
}
