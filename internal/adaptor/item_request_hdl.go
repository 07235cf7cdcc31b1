package adaptor

import (
	"net/http"

	"shareit/internal/dto/request"
	"shareit/internal/usecase"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

type ItemRequestHandler struct {
	service usecase.ItemRequestService
	log     *zap.Logger
}

func NewItemRequestHandler(service usecase.ItemRequestService, log *zap.Logger) *ItemRequestHandler {
	return &ItemRequestHandler{
		service: service,
		log:     log.With(zap.String("handler", "item_request")),
	}
}

// CreateRequest handles POST /requests
func (h *ItemRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.CreateItemRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	created, err := h.service.CreateRequest(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create item request")
		return
	}

	utils.ResponseCreated(w, "Item request created", created)
}

// ListOwnRequests handles GET /requests
func (h *ItemRequestHandler) ListOwnRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	requests, err := h.service.ListOwnRequests(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, h.log, err, "list own item requests")
		return
	}

	utils.ResponseSuccess(w, "success", requests)
}

// ListOtherRequests handles GET /requests/all?from=&size=
func (h *ItemRequestHandler) ListOtherRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	page, err := parsePage(r.URL.Query())
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	requests, err := h.service.ListOtherRequests(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, r, h.log, err, "list item requests")
		return
	}

	utils.ResponseSuccess(w, "success", requests)
}

// GetRequest handles GET /requests/{requestId}
func (h *ItemRequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	requestID, err := pathID(r, "requestId")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	found, err := h.service.GetRequest(r.Context(), requestID, userID)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get item request")
		return
	}

	utils.ResponseSuccess(w, "success", found)
}
