package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/notes-backend/internal/middleware"
	"github.com/iliyamo/notes-backend/internal/model"
	"github.com/iliyamo/notes-backend/internal/queue"
	"github.com/iliyamo/notes-backend/internal/repository"
	queue_publisher "github.com/iliyamo/notes-backend/internal/service"
)

// NoteHandler bundles dependencies for the owner-scoped note CRUD
// endpoints. All of them run behind SessionAuth, and every repository
// call is filtered by the authenticated owner's id, so a note that
// belongs to someone else is indistinguishable from one that does not
// exist.
type NoteHandler struct {
	Notes *repository.NoteRepo
}

func NewNoteHandler(n *repository.NoteRepo) *NoteHandler {
	return &NoteHandler{Notes: n}
}

type noteReq struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// List handles GET /api/notes and returns every note owned by the
// caller.
func (h *NoteHandler) List(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	notes, err := h.Notes.ListByOwner(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, notes)
}

// Get handles GET /api/notes/:id.
func (h *NoteHandler) Get(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	note, err := h.Notes.GetByIDAndOwner(ctx, id, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if note == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "note not found"})
	}
	return c.JSON(http.StatusOK, note)
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req noteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	note, err := h.Notes.Create(ctx, u.ID, req.Title, req.Content, req.Category, req.Tags)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create note failed"})
	}
	publishNoteEvent(ctx, queue.ActionCreated, note)
	return c.JSON(http.StatusOK, note)
}

// Update handles PUT /api/notes/:id with full replacement of title,
// content, category and tags.
func (h *NoteHandler) Update(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req noteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	note, err := h.Notes.Update(ctx, id, u.ID, req.Title, req.Content, req.Category, req.Tags)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update note failed"})
	}
	if note == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "note not found"})
	}
	publishNoteEvent(ctx, queue.ActionUpdated, note)
	return c.JSON(http.StatusOK, note)
}

// Delete handles DELETE /api/notes/:id. The delete is hard; there is
// no tombstone to restore from.
func (h *NoteHandler) Delete(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.Notes.DeleteByIDAndOwner(ctx, id, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete note failed"})
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "note not found"})
	}
	publishNoteEvent(ctx, queue.ActionDeleted, &model.Note{ID: id, OwnerID: u.ID})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// publishNoteEvent emits a lifecycle event for downstream consumers.
// Publishing is best effort; a broker outage must never fail the
// request that triggered the event.
func publishNoteEvent(ctx context.Context, action string, n *model.Note) {
	_ = queue_publisher.PublishNoteEvent(ctx, queue.NoteEvent{
		Action:     action,
		NoteID:     n.ID,
		OwnerID:    n.OwnerID,
		Title:      n.Title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
