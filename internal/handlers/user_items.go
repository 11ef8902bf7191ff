package handlers

import (
	"ItemKeeper/internal/service"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserItemsHandler — записи конкретного пользователя (/items/users/{id}).
type UserItemsHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	resp        responder
}

func NewUserItemsHandler(itemService *service.ItemService, logger *zap.SugaredLogger, legacy bool) *UserItemsHandler {
	return &UserItemsHandler{
		ItemService: itemService,
		Logger:      logger,
		resp:        responder{legacy: legacy, logger: logger},
	}
}

// Routes возвращает подроутер для монтирования в /items/users.
func (h *UserItemsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.List)
	return r
}

// List — GET /items/users/{id}. Пустой результат и неизвестный пользователь не различаются.
// chi отдаёт сегмент в экранированном виде, если у запроса есть RawPath (id вида "org%2Fu1").
func (h *UserItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	owner, err := url.PathUnescape(raw)
	if err != nil || owner == "" {
		h.resp.fail(w, apiError{kind: KindValidation, message: fmt.Sprintf("invalid user id %q", raw)})
		return
	}

	items, err := h.ItemService.ListByOwner(r.Context(), owner)
	if err != nil {
		if errors.Is(err, service.ErrNoItemsForUser) {
			h.resp.fail(w, apiError{
				kind:         KindNotFound,
				message:      fmt.Sprintf("No items under user %s", owner),
				legacyStatus: http.StatusBadRequest,
			})
			return
		}
		h.Logger.Errorw("ListByOwner: service error", "owner", owner, "error", err)
		h.resp.fail(w, internalError())
		return
	}
	h.resp.json(w, http.StatusOK, items)
}
