package handler

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/goldo-server/internal/api/http/reqctx"
	"github.com/dtroode/goldo-server/internal/logger"
	"github.com/dtroode/goldo-server/internal/model"
)

// TodoService defines to-do operations scoped to an owner.
type TodoService interface {
	CreateTodo(ctx context.Context, userID uuid.UUID, title string) (model.Todo, error)
	GetTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error)
	GetCompletedTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error)
	GetIncompleteTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, userID uuid.UUID, id int64, title string, completed bool) (model.Todo, error)
	MarkComplete(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error)
	MarkIncomplete(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error)
	MoveUp(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error)
	MoveDown(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error)
	DeleteTodo(ctx context.Context, userID uuid.UUID, id int64) error
}

// Todo handles HTTP endpoints for to-do items.
type Todo struct {
	todoService TodoService
	reqctx      *reqctx.Manager
	validate    *validator.Validate
	logger      *logger.Logger
}

// NewTodo creates a new Todo handler.
func NewTodo(todoService TodoService, reqctx *reqctx.Manager, logger *logger.Logger) *Todo {
	return &Todo{
		todoService: todoService,
		reqctx:      reqctx,
		validate:    validator.New(),
		logger:      logger,
	}
}

type createTodoRequest struct {
	Title string `json:"title" validate:"required"`
}

type updateTodoRequest struct {
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
}

// Create appends a new todo to the end of the caller's list.
func (h *Todo) Create(c *fiber.Ctx) error {
	userID, ok := h.reqctx.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req createTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	todo, err := h.todoService.CreateTodo(c.UserContext(), userID, req.Title)
	if err != nil {
		h.logger.Error("Todo handler: create failed",
			"user_id", userID,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"todo": newTodoResponse(todo),
	})
}

// List returns all todos of the caller in display order.
func (h *Todo) List(c *fiber.Ctx) error {
	return h.list(c, func(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
		return h.todoService.GetTodos(ctx, userID)
	})
}

// ListCompleted returns the caller's completed todos in display order.
func (h *Todo) ListCompleted(c *fiber.Ctx) error {
	return h.list(c, func(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
		return h.todoService.GetCompletedTodos(ctx, userID)
	})
}

// ListIncomplete returns the caller's incomplete todos in display order.
func (h *Todo) ListIncomplete(c *fiber.Ctx) error {
	return h.list(c, func(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
		return h.todoService.GetIncompleteTodos(ctx, userID)
	})
}

func (h *Todo) list(c *fiber.Ctx, query func(context.Context, uuid.UUID) ([]model.Todo, error)) error {
	userID, ok := h.reqctx.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	todos, err := query(c.UserContext(), userID)
	if err != nil {
		h.logger.Error("Todo handler: list failed",
			"user_id", userID,
			"error", err.Error())
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"todos": newTodoListResponse(todos),
	})
}

// Update replaces title and completed on the identified todo.
func (h *Todo) Update(c *fiber.Ctx) error {
	userID, ok := h.reqctx.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return handleError(c, err)
	}

	var req updateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	todo, err := h.todoService.UpdateTodo(c.UserContext(), userID, id, req.Title, req.Completed)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"todo": newTodoResponse(todo),
	})
}

// Complete marks the identified todo as completed. Idempotent.
func (h *Todo) Complete(c *fiber.Ctx) error {
	return h.mutate(c, h.todoService.MarkComplete)
}

// Incomplete marks the identified todo as not completed. Idempotent.
func (h *Todo) Incomplete(c *fiber.Ctx) error {
	return h.mutate(c, h.todoService.MarkIncomplete)
}

// MoveUp moves the identified todo one position toward the front.
func (h *Todo) MoveUp(c *fiber.Ctx) error {
	return h.mutate(c, h.todoService.MoveUp)
}

// MoveDown moves the identified todo one position toward the back.
func (h *Todo) MoveDown(c *fiber.Ctx) error {
	return h.mutate(c, h.todoService.MoveDown)
}

func (h *Todo) mutate(c *fiber.Ctx, op func(context.Context, uuid.UUID, int64) (model.Todo, error)) error {
	userID, ok := h.reqctx.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return handleError(c, err)
	}

	todo, err := op(c.UserContext(), userID, id)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"todo": newTodoResponse(todo),
	})
}

// Delete removes the identified todo permanently.
func (h *Todo) Delete(c *fiber.Ctx) error {
	userID, ok := h.reqctx.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := h.todoService.DeleteTodo(c.UserContext(), userID, id); err != nil {
		return handleError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.ErrInvalidInput
	}
	return id, nil
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "missing authorization token",
	})
}
