package handler

//go:generate mockgen -source=handler.go -destination=mocks/service-mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"eudiwallet/internal/catalog/filter"
	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/orchestrator"
	dErrors "eudiwallet/pkg/domain-errors"
	"eudiwallet/pkg/platform/httputil"
	"eudiwallet/pkg/platform/middleware/requestid"
	"eudiwallet/pkg/platform/middleware/requesttime"
	"eudiwallet/pkg/requestcontext"
)

const requestTimeout = 30 * time.Second

// Service is the catalog surface exposed over HTTP.
type Service interface {
	View() orchestrator.View
	Load(ctx context.Context) (orchestrator.View, error)
	Pause()
	Resume(ctx context.Context) (orchestrator.View, error)
	Search(query string) orchestrator.View
	BeginFilterEdit() orchestrator.View
	ToggleFilter(groupID, itemID string) (orchestrator.View, error)
	SetSortDirection(dir filter.Direction) orchestrator.View
	ApplyFilters(ctx context.Context) orchestrator.View
	RevertFilters() orchestrator.View
	ResetFilters(ctx context.Context) orchestrator.View
	RetryIssuance(ctx context.Context, ids ...models.DocumentID) (orchestrator.View, error)
	DismissReady() orchestrator.View
	DeleteDocument(ctx context.Context, id models.DocumentID) (orchestrator.DeleteOutcome, error)
}

// Handler serves the document catalog.
type Handler struct {
	catalog Service
	logger  *slog.Logger
}

func New(catalog Service, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

type searchRequest struct {
	Query string `json:"query"`
}

type toggleRequest struct {
	GroupID string `json:"group_id"`
	ItemID  string `json:"item_id"`
}

type directionRequest struct {
	Direction string `json:"direction"`
}

type retryRequest struct {
	IDs []models.DocumentID `json:"ids"`
}

// Register mounts the catalog routes under /catalog.
func (h *Handler) Register(r chi.Router) {
	catalogRouter := chi.NewRouter()
	catalogRouter.Use(chimw.Recoverer)
	catalogRouter.Use(requestid.Middleware)
	catalogRouter.Use(requesttime.Middleware)
	catalogRouter.Use(chimw.Timeout(requestTimeout))

	catalogRouter.Get("/", h.handleView)
	catalogRouter.Post("/load", h.handleLoad)
	catalogRouter.Post("/pause", h.handlePause)
	catalogRouter.Post("/resume", h.handleResume)
	catalogRouter.Post("/search", h.handleSearch)

	catalogRouter.Route("/filters", func(fr chi.Router) {
		fr.Post("/edit", h.handleBeginEdit)
		fr.Post("/toggle", h.handleToggle)
		fr.Put("/direction", h.handleDirection)
		fr.Post("/apply", h.handleApply)
		fr.Post("/revert", h.handleRevert)
		fr.Post("/reset", h.handleReset)
	})

	catalogRouter.Post("/deferred/retry", h.handleRetry)
	catalogRouter.Post("/deferred/ready/dismiss", h.handleDismissReady)
	catalogRouter.Delete("/documents/{id}", h.handleDelete)

	r.Mount("/catalog", catalogRouter)
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.View())
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	view, err := h.catalog.Load(r.Context())
	if err != nil {
		h.fail(w, r, "failed to load catalog", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.catalog.Pause()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	view, err := h.catalog.Resume(r.Context())
	if err != nil {
		h.fail(w, r, "failed to resume catalog", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "invalid search request", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.catalog.Search(req.Query))
}

func (h *Handler) handleBeginEdit(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.BeginFilterEdit())
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "invalid toggle request", err)
		return
	}
	if req.GroupID == "" || req.ItemID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "group_id and item_id are required"))
		return
	}
	view, err := h.catalog.ToggleFilter(req.GroupID, req.ItemID)
	if err != nil {
		h.fail(w, r, "failed to toggle filter", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleDirection(w http.ResponseWriter, r *http.Request) {
	var req directionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "invalid direction request", err)
		return
	}
	dir, err := filter.ParseDirection(req.Direction)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.catalog.SetSortDirection(dir))
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.ApplyFilters(r.Context()))
}

func (h *Handler) handleRevert(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.RevertFilters())
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.ResetFilters(r.Context()))
}

// handleRetry accepts an empty body to retry every failed document.
func (h *Handler) handleRetry(w http.ResponseWriter, r *http.Request) {
	var req retryRequest
	if r.ContentLength != 0 {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			h.fail(w, r, "invalid retry request", err)
			return
		}
	}
	view, err := h.catalog.RetryIssuance(r.Context(), req.IDs...)
	if err != nil {
		h.fail(w, r, "failed to retry deferred issuance", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleDismissReady(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.DismissReady())
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "document id is required"))
		return
	}
	out, err := h.catalog.DeleteDocument(r.Context(), models.DocumentID(id))
	if err != nil {
		h.fail(w, r, "failed to delete document", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// fail logs err at a level matching its status and writes the error response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	if httputil.StatusFor(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, "request_id", requestID, "error", err)
	} else {
		h.logger.WarnContext(ctx, msg, "request_id", requestID, "error", err)
	}
	httputil.WriteError(w, err)
}
