package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/DREXATROLL/muzrent-pro/internal/handler/dto"
	"github.com/DREXATROLL/muzrent-pro/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	msgBooked    = "Item booked successfully"
	msgCancelled = "Rental cancelled, item is available again"

	retryAfterSeconds = "1"
)

type ItemSvc interface {
	Create(ctx context.Context, input domain.CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error)
	SetMaintenance(ctx context.Context, id string, enabled bool) (*domain.Item, error)
}

type RentalSvc interface {
	Book(ctx context.Context, itemID, userID string) (*domain.Rental, error)
	Cancel(ctx context.Context, rentalID, userID string) (*domain.Rental, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Rental, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	itemService   ItemSvc
	rentalService RentalSvc
	userService   UserSvc
}

func NewHandler(itemService ItemSvc, rentalService RentalSvc, userService UserSvc) *Handler {
	return &Handler{
		itemService:   itemService,
		rentalService: rentalService,
		userService:   userService,
	}
}

// Items

func (h *Handler) ListItems(c *ginext.Context) {
	var q dto.ListItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items, err := h.itemService.List(c.Request.Context(), domain.ItemFilter{
		Category: q.Category,
		Status:   domain.ItemStatus(q.Status),
		Query:    q.Query,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, dto.ToItemResponse(i))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetItem(c *ginext.Context) {
	id, ok := uuidParam(c, "invalid item id")
	if !ok {
		return
	}

	item, err := h.itemService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) CreateItem(c *ginext.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), domain.CreateItemInput{
		Name:            req.Name,
		Category:        req.Category,
		DailyPriceCents: req.DailyPriceCents,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *Handler) SetMaintenance(c *ginext.Context) {
	id, ok := uuidParam(c, "invalid item id")
	if !ok {
		return
	}

	var req dto.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.itemService.SetMaintenance(c.Request.Context(), id, *req.Enabled)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// Rentals

func (h *Handler) BookItem(c *ginext.Context) {
	itemID, ok := uuidParam(c, "invalid item id")
	if !ok {
		return
	}

	rental, err := h.rentalService.Book(c.Request.Context(), itemID, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingResponse{
		Message: msgBooked,
		Rental:  dto.ToRentalResponse(rental),
	})
}

func (h *Handler) CancelRental(c *ginext.Context) {
	rentalID, ok := uuidParam(c, "invalid rental id")
	if !ok {
		return
	}

	rental, err := h.rentalService.Cancel(c.Request.Context(), rentalID, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Message: msgCancelled,
		Rental:  dto.ToRentalResponse(rental),
	})
}

func (h *Handler) ListMyRentals(c *ginext.Context) {
	rentals, err := h.rentalService.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		resp = append(resp, dto.ToRentalResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func uuidParam(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: publicMessage(err)})

	case errors.Is(err, domain.ErrItemUnavailable),
		errors.Is(err, domain.ErrItemRented):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: publicMessage(err)})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTransient):
		c.Header("Retry-After", retryAfterSeconds)
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: domain.ErrTransient.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// publicMessage drops the wrapping context ("book item: ...") from
// terminal domain errors.
func publicMessage(err error) string {
	for _, target := range []error{
		domain.ErrRentalNotActive,
		domain.ErrItemNotFound,
		domain.ErrRentalNotFound,
		domain.ErrUserNotFound,
		domain.ErrItemUnavailable,
		domain.ErrItemRented,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
