package handler

import (
	"encoding/json"
	"net/http"

	"sudagala/internal/stays/service"
	apperrors "sudagala/pkg/errors"
	httputil "sudagala/pkg/http"
	"sudagala/pkg/logger"
	"sudagala/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type StayHandler struct {
	service service.StayService
	log     *logger.Logger
}

func NewStayHandler(service service.StayService, log *logger.Logger) *StayHandler {
	return &StayHandler{
		service: service,
		log:     log,
	}
}

func (h *StayHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/stays", h.ListActive)
	router.GET("/api/v1/stays/slug/:slug", h.GetBySlug)
	router.GET("/api/v1/stays/id/:id", h.GetByID)
	router.GET("/api/v1/admin/stays", h.GetAll)
	router.POST("/api/v1/stays", h.Create)
	router.PATCH("/api/v1/stays/id/:id", h.Update)
	router.DELETE("/api/v1/stays/id/:id", h.Delete)
}

func (h *StayHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var stay model.Stay
	if err := json.NewDecoder(r.Body).Decode(&stay); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &stay); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, stay); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *StayHandler) ListActive(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stays, err := h.service.ListActive(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListActive", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, stays); err != nil {
		h.log.Error("failed to write success response", "handler", "ListActive", "error", err)
	}
}

func (h *StayHandler) GetBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stay, err := h.service.GetBySlug(r.Context(), ps.ByName("slug"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetBySlug", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, stay); err != nil {
		h.log.Error("failed to write success response", "handler", "GetBySlug", "error", err)
	}
}

func (h *StayHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stay, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, stay); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *StayHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	stays, count, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, stays, count, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "error", err)
	}
}

func (h *StayHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.StayUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := h.service.Update(r.Context(), ps.ByName("id"), &updates); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *StayHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}
