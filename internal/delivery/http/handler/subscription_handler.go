package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"
)

type SubscriptionHandler struct {
	subscriptionUsecase usecase.SubscriptionUsecase
	validator           *validator.CustomValidator
}

func NewSubscriptionHandler(subscriptionUsecase usecase.SubscriptionUsecase, validator *validator.CustomValidator) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUsecase: subscriptionUsecase,
		validator:           validator,
	}
}

// Subscribe upserts the caller's own subscription. The user ID always
// comes from the authenticated context, never from the request body.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	subscription, err := h.subscriptionUsecase.Subscribe(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPlan:
			response.Error(w, http.StatusBadRequest, "Invalid subscription plan", nil)
		case usecase.ErrSubscriptionUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to subscribe")
		}
		return
	}

	response.Success(w, http.StatusOK, "Subscribed successfully", subscription)
}

func (h *SubscriptionHandler) GetMySubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	subscription, err := h.subscriptionUsecase.GetActiveSubscription(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get subscription")
		return
	}
	if subscription == nil {
		response.NotFound(w, "No active subscription")
		return
	}

	response.Success(w, http.StatusOK, "Subscription retrieved successfully", subscription)
}
