package handlers

import (
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/service"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ItemHandler обслуживает CRUD над /items.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
	resp        responder
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{
		ItemService: itemService,
		Logger:      logger,
		Config:      cfg,
		resp:        responder{legacy: cfg.LegacyResponses, logger: logger},
	}
}

func itemNotFound(raw string, legacyStatus int) apiError {
	return apiError{kind: KindNotFound, message: fmt.Sprintf("Item id %s not found", raw), legacyStatus: legacyStatus}
}

// badItemID — id не число. В legacy-режиме такой id просто не находится.
func (h *ItemHandler) badItemID(w http.ResponseWriter, raw string, err error, legacyStatus int) {
	if h.resp.legacy {
		h.resp.fail(w, itemNotFound(raw, legacyStatus))
		return
	}
	h.resp.fail(w, apiError{kind: KindValidation, message: err.Error()})
}

// serviceError переводит ошибки сервиса в ответ.
func (h *ItemHandler) serviceError(w http.ResponseWriter, op, raw string, err error, notFoundLegacy int, forbiddenMsg string) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		h.resp.fail(w, itemNotFound(raw, notFoundLegacy))
	case errors.Is(err, service.ErrForbidden):
		h.resp.fail(w, apiError{kind: KindForbidden, message: forbiddenMsg})
	default:
		h.Logger.Errorw(op+": service error", "id", raw, "error", err)
		h.resp.fail(w, internalError())
	}
}

// Create — POST /items. Владелец — пользователь из токена.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.resp.unauthorized(w, r)
		return
	}

	req, err := decodeItemRequest(w, r)
	if err != nil {
		h.Logger.Debugw("Create: invalid request body", "error", err)
		h.resp.fail(w, apiError{kind: KindValidation, message: err.Error()})
		return
	}

	it, err := h.ItemService.Create(r.Context(), userID, *req.Name, *req.Quantity)
	if err != nil {
		h.Logger.Errorw("Create: service error", "user_id", userID, "error", err)
		h.resp.fail(w, internalError())
		return
	}
	h.resp.json(w, http.StatusCreated, it)
}

// List — GET /items, без фильтров и пагинации.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		h.resp.fail(w, internalError())
		return
	}
	h.resp.json(w, http.StatusOK, items)
}

// Get — GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, raw, err := pathItemID(r)
	if err != nil {
		h.badItemID(w, raw, err, http.StatusBadRequest)
		return
	}

	it, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		h.serviceError(w, "Get", raw, err, http.StatusBadRequest, "")
		return
	}
	h.resp.json(w, http.StatusOK, it)
}

// Update — PUT /items/{id}. Править можно только свою запись.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.resp.unauthorized(w, r)
		return
	}

	id, raw, err := pathItemID(r)
	if err != nil {
		h.badItemID(w, raw, err, http.StatusNotFound)
		return
	}

	req, err := decodeItemRequest(w, r)
	if err != nil {
		h.Logger.Debugw("Update: invalid request body", "id", raw, "error", err)
		h.resp.fail(w, apiError{kind: KindValidation, message: err.Error()})
		return
	}

	confirmation, err := h.ItemService.Update(r.Context(), userID, id, *req.Name, *req.Quantity)
	if err != nil {
		h.serviceError(w, "Update", raw, err, http.StatusNotFound, "Forbidden: You can only edit items you own.")
		return
	}
	h.resp.json(w, http.StatusOK, confirmation)
}

// Delete — DELETE /items/{id}. В строгом режиме маршрут закрыт WithAuth и удаляет только владелец.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	strict := h.Config.StrictDelete
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if strict && !ok {
		h.resp.unauthorized(w, r)
		return
	}

	id, raw, err := pathItemID(r)
	if err != nil {
		h.badItemID(w, raw, err, http.StatusBadRequest)
		return
	}

	if err := h.ItemService.Delete(r.Context(), userID, id, strict); err != nil {
		h.serviceError(w, "Delete", raw, err, http.StatusBadRequest, "Forbidden: You can only delete items you own.")
		return
	}
	h.resp.result(w, http.StatusOK, fmt.Sprintf("Deleted item %s successfully", raw))
}
