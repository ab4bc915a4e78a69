package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrAppointmentDoctorNotFound, usecase.ErrAppointmentPatientNotFound:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// GetAllAppointments serves the management list. Optional query
// parameters: date=YYYY-MM-DD switches to the single-day view;
// search and status narrow the fetched list without re-querying.
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		list *dto.AppointmentListResponse
		err  error
	)
	if date := query.Get("date"); date != "" {
		list, err = h.appointmentUsecase.GetAppointmentsByDate(r.Context(), date)
	} else {
		list, err = h.appointmentUsecase.GetAllAppointments(r.Context())
	}
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	if search, status := query.Get("search"), query.Get("status"); search != "" || status != "" {
		filtered := usecase.FilterAppointments(list.Appointments, search, status)
		list = &dto.AppointmentListResponse{
			Appointments: filtered,
			Total:        len(filtered),
		}
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", list)
}

func (h *AppointmentHandler) GetUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	var statuses []string
	if raw := query.Get("statuses"); raw != "" {
		statuses = splitCSV(raw)
	}

	list, err := h.appointmentUsecase.GetUpcomingAppointments(r.Context(), query.Get("from"), statuses, limit)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidAppointmentStatus:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get upcoming appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Upcoming appointments retrieved successfully", list)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidAppointmentStatus,
			usecase.ErrAppointmentDoctorNotFound, usecase.ErrAppointmentPatientNotFound:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	err = h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
