package handlers

import (
	"net/http"

	request "github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/dto/request"
	response "github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/dto/response"
	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase"
	"github.com/rezaesmaeili3562-spec/login.b/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// AdminHandler serves the panel: the full order book, lifecycle updates and
// the account list. Routes using it sit behind the admin guard.

type AdminHandler struct {
	orders usecase.IOrdersUseCase
	users  usecase.IUsersUseCase
}

func NewAdminHandler(orders usecase.IOrdersUseCase, users usecase.IUsersUseCase) *AdminHandler {
	return &AdminHandler{orders: orders, users: users}
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapOrdersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateStatus applies one lifecycle transition to an order.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("order_id"), entities.OrderStatus(payload.Status))
	if err != nil {
		appErr := mapOrdersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}
