// Package http exposes the held-order store over a small REST surface.
// It coordinates between HTTP handlers and application use cases; request
// and response shapes live in dto.go.
package http

import (
	"errors"
	"net/http"

	"digisales/internal/core/application/usecases/commands"
	"digisales/internal/core/application/usecases/queries"
	"digisales/internal/core/domain/model/heldorder"
	"digisales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the held-order REST surface.
type Server struct {
	holdOrderHandler      commands.HoldOrderCommandHandler
	restoreHandler        commands.RestoreHeldOrderCommandHandler
	deleteHandler         commands.DeleteHeldOrderCommandHandler
	listHeldOrdersHandler queries.ListHeldOrdersQueryHandler
}

// NewServer creates an HTTP server over the held-order use cases.
func NewServer(
	holdOrderHandler commands.HoldOrderCommandHandler,
	restoreHandler commands.RestoreHeldOrderCommandHandler,
	deleteHandler commands.DeleteHeldOrderCommandHandler,
	listHeldOrdersHandler queries.ListHeldOrdersQueryHandler,
) *Server {
	return &Server{
		holdOrderHandler:      holdOrderHandler,
		restoreHandler:        restoreHandler,
		deleteHandler:         deleteHandler,
		listHeldOrdersHandler: listHeldOrdersHandler,
	}
}

// RegisterRoutes mounts the held-order routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/held-orders", s.CreateHeldOrder)
	e.GET("/api/v1/held-orders", s.ListHeldOrders)
	e.PATCH("/api/v1/held-orders", s.RestoreHeldOrder)
	e.DELETE("/api/v1/held-orders", s.DeleteHeldOrder)
}

// CreateHeldOrder handles POST /api/v1/held-orders - parks a cart snapshot
// under a unique name.
func (s *Server) CreateHeldOrder(ctx echo.Context) error {
	var req createHeldOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items, err := req.toItems()
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewHoldOrderCommand(req.OrderName, items)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	hold, err := s.holdOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createHeldOrderResponse{
		Status: statusSuccess,
		Order:  heldOrderFromDomain(hold),
	})
}

// ListHeldOrders handles GET /api/v1/held-orders - lists held orders still
// waiting to be picked up, newest first.
func (s *Server) ListHeldOrders(ctx echo.Context) error {
	query, err := queries.NewListHeldOrdersQueryWithStatus(heldorder.Held)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to list held orders")
	}

	orders, err := s.listHeldOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to list held orders")
	}

	return ctx.JSON(http.StatusOK, listHeldOrdersResponse{
		Status: statusSuccess,
		Orders: heldOrderListFromQuery(orders),
	})
}

// RestoreHeldOrder handles PATCH /api/v1/held-orders?orderName=... - marks
// the hold "Processed" and returns its raw item snapshot.
func (s *Server) RestoreHeldOrder(ctx echo.Context) error {
	cmd, err := commands.NewRestoreHeldOrderCommand(ctx.QueryParam("orderName"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := s.restoreHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, restoreHeldOrderResponse{
		Status: statusSuccess,
		Items:  itemsToDTO(items),
	})
}

// DeleteHeldOrder handles DELETE /api/v1/held-orders?orderName=... -
// permanently removes the hold and its line records.
func (s *Server) DeleteHeldOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteHeldOrderCommand(ctx.QueryParam("orderName"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Status: statusSuccess})
}

func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrNameConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err.Error())
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, statusResponse{Status: statusError, Message: message})
}
