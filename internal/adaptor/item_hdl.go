package adaptor

import (
	"net/http"

	"shareit/internal/dto/request"
	"shareit/internal/usecase"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

type ItemHandler struct {
	service usecase.ItemService
	log     *zap.Logger
}

func NewItemHandler(service usecase.ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		log:     log.With(zap.String("handler", "item")),
	}
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.CreateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.CreateItem(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create item")
		return
	}

	utils.ResponseCreated(w, "Item created", item)
}

// UpdateItem handles PATCH /items/{itemId}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.UpdateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), itemID, userID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "update item")
		return
	}

	utils.ResponseSuccess(w, "Item updated", item)
}

// GetItem handles GET /items/{itemId}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID, userID)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get item")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// ListOwnerItems handles GET /items?from=&size=
func (h *ItemHandler) ListOwnerItems(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.service.ListOwnerItems(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, r, h.log, err, "list owner items")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// SearchItems handles GET /items/search?text=&from=&size=
func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := parsePage(query)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	items, err := h.service.SearchItems(r.Context(), query.Get("text"), page)
	if err != nil {
		handleServiceError(w, r, h.log, err, "search items")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// AddComment handles POST /items/{itemId}/comment
func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.AddComment(r.Context(), itemID, userID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "add comment")
		return
	}

	utils.ResponseCreated(w, "Comment added", comment)
}
