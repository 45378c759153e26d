package notes

import (
	"context"
	"log/slog"

	"notes-api/cmd/server/handlers/handlerutil"
	"notes-api/internal/services/notes"
	"notes-api/internal/utils/sanitize"

	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for notes service
type Service interface {
	List(ctx context.Context) notes.Result[[]*notes.Note]
	Create(ctx context.Context, in notes.Note) notes.Result[*notes.Note]
	Get(ctx context.Context, id string) notes.Result[*notes.Note]
	Update(ctx context.Context, in notes.Note) notes.Result[*notes.Note]
	Delete(ctx context.Context, id string) notes.Result[string]
}

// Handlers contains the notes HTTP handlers
type Handlers struct {
	service Service
	log     *slog.Logger
}

// NewHandlers creates new notes handlers
func NewHandlers(service Service, log *slog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log,
	}
}

const previewRunes = 64

// noteAttrs describes an incoming note for the request log. The description
// is logged as a length plus a markup-free preview.
func noteAttrs(handlerName string, n notes.Note) []any {
	return []any{
		"handler", handlerName,
		"note_id", n.ID,
		"description_len", len(n.Description),
		"description_preview", sanitize.Preview(n.Description, previewRunes),
	}
}

// respond writes the Result envelope. Failures carry their own status.
func respond[T any](c *fiber.Ctx, log *slog.Logger, handlerName string, res notes.Result[T], okStatus int) error {
	if res.Failed() {
		log.Info("request finished", "handler", handlerName, "status", res.Status(), "detail", res.Detail())
		return c.Status(res.Status()).JSON(res.ErrorResponse())
	}

	log.Info("request finished", "handler", handlerName, "status", okStatus)
	return c.Status(okStatus).JSON(res.SuccessResponse())
}

// List handles notes listing
// @Summary List all notes
// @Description Most recently inserted first
// @Tags notes
// @Produce json
// @Success 200 {object} notes.SuccessResponse[[]notes.Note]
// @Failure 500 {object} notes.ErrorResponse
// @Router /notes [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	h.log.Info("request received", "handler", "List")

	res := h.service.List(c.UserContext())
	return respond(c, h.log, "List", res, fiber.StatusOK)
}

// Create handles note creation
// @Summary Create a new note
// @Description id and dateTime are assigned by the server
// @Tags notes
// @Accept json
// @Produce json
// @Param request body notes.Note true "Note to create"
// @Success 201 {object} notes.SuccessResponse[notes.Note]
// @Failure 400 {object} notes.ErrorResponse
// @Failure 500 {object} notes.ErrorResponse
// @Router /notes [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req notes.Note
	if err := handlerutil.ParseBody(c, &req, h.log, "Create"); err != nil {
		return err
	}
	h.log.Info("request received", noteAttrs("Create", req)...)

	res := h.service.Create(c.UserContext(), req)
	return respond(c, h.log, "Create", res, fiber.StatusCreated)
}

// Get handles fetching a single note
// @Summary Get a note by id
// @Description An unknown id is reported as 400
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} notes.SuccessResponse[notes.Note]
// @Failure 400 {object} notes.ErrorResponse
// @Failure 500 {object} notes.ErrorResponse
// @Router /notes/{id} [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	h.log.Info("request received", "handler", "Get", "note_id", id)

	res := h.service.Get(c.UserContext(), id)
	return respond(c, h.log, "Get", res, fiber.StatusOK)
}

// Update handles note updates
// @Summary Update a note
// @Description Upserts by id
// @Tags notes
// @Accept json
// @Produce json
// @Param request body notes.Note true "Full note"
// @Success 200 {object} notes.SuccessResponse[notes.Note]
// @Failure 400 {object} notes.ErrorResponse
// @Failure 500 {object} notes.ErrorResponse
// @Router /notes [put]
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req notes.Note
	if err := handlerutil.ParseBody(c, &req, h.log, "Update"); err != nil {
		return err
	}
	h.log.Info("request received", noteAttrs("Update", req)...)

	res := h.service.Update(c.UserContext(), req)
	return respond(c, h.log, "Update", res, fiber.StatusOK)
}

// Delete handles note deletion
// @Summary Delete a note
// @Description Deleting an unknown id succeeds
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} notes.SuccessResponse[string]
// @Failure 500 {object} notes.ErrorResponse
// @Router /notes/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.log.Info("request received", "handler", "Delete", "note_id", id)

	res := h.service.Delete(c.UserContext(), id)
	return respond(c, h.log, "Delete", res, fiber.StatusOK)
}
