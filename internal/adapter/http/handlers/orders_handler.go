package handlers

import (
	"errors"
	"net/http"

	response "github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/dto/response"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase"
	"github.com/rezaesmaeili3562-spec/login.b/pkg"

	"github.com/gin-gonic/gin"
)

// OrdersHandler serves the customer-facing order history, timeline and
// invoice views.

type OrdersHandler struct {
	orders   usecase.IOrdersUseCase
	invoices usecase.IInvoiceUseCase
	auth     usecase.IAuthUseCase
}

func NewOrdersHandler(orders usecase.IOrdersUseCase, invoices usecase.IInvoiceUseCase, auth usecase.IAuthUseCase) *OrdersHandler {
	return &OrdersHandler{orders: orders, invoices: invoices, auth: auth}
}

// ListMine returns the session customer's submitted orders.
func (h *OrdersHandler) ListMine(c *gin.Context) {
	user, ok := h.auth.CurrentUser(c.Request.Context())
	if !ok {
		appErr := mapAuthError(usecase.ErrNotAuthenticated)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orders, err := h.orders.ListByCustomer(c.Request.Context(), user.ID)
	if err != nil {
		appErr := mapOrdersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrdersHandler) GetByID(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrdersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrdersHandler) Timeline(c *gin.Context) {
	entries, err := h.orders.Timeline(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrdersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTimeline(entries))
}

// Invoice renders the printable HTML document for the order.
func (h *OrdersHandler) Invoice(c *gin.Context) {
	html, err := h.invoices.RenderInvoice(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrdersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func mapOrdersError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
