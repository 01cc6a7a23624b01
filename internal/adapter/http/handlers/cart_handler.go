package handlers

import (
	"errors"
	"net/http"

	request "github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/dto/request"
	response "github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/dto/response"
	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase"
	"github.com/rezaesmaeili3562-spec/login.b/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
)

// CartHandler drives the single draft order. Guests can build and submit a
// cart; an authenticated session only enriches the submitted order with the
// customer snapshot.

type CartHandler struct {
	drafts usecase.IOrderDraftUseCase
	auth   usecase.IAuthUseCase
}

func NewCartHandler(drafts usecase.IOrderDraftUseCase, auth usecase.IAuthUseCase) *CartHandler {
	return &CartHandler{drafts: drafts, auth: auth}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	order, err := h.drafts.CurrentOrder(c.Request.Context())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	item, err := h.drafts.AddItem(c.Request.Context(), payload.ServiceID, payload.ToSelections())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.drafts.RemoveItem(c.Request.Context(), c.Param("item_id")); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	if err := h.drafts.UpdateQuantity(c.Request.Context(), c.Param("item_id"), payload.Quantity); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) UpdateNotes(c *gin.Context) {
	var payload request.UpdateNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	if err := h.drafts.UpdateNotes(c.Request.Context(), payload.Notes); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) AddAttachment(c *gin.Context) {
	var payload request.AddAttachmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	att, err := h.drafts.AddAttachment(c.Request.Context(), usecase.AttachmentInput{
		Filename: payload.Filename,
		Size:     payload.Size,
		MimeType: payload.MimeType,
	})
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, att)
}

func (h *CartHandler) RemoveAttachment(c *gin.Context) {
	if err := h.drafts.RemoveAttachment(c.Request.Context(), c.Param("attachment_id")); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit finalizes the cart. The customer snapshot comes from the session
// when present; anonymous submissions are accepted.
func (h *CartHandler) Submit(c *gin.Context) {
	var customer *entities.CustomerInfo
	if user, ok := h.auth.CurrentUser(c.Request.Context()); ok {
		customer = &entities.CustomerInfo{ID: user.ID, Name: user.Name, Phone: user.Phone}
	}

	order, err := h.drafts.SubmitOrder(c.Request.Context(), customer)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOptionSelection):
		return pkg.NewDomainErrorSimple("INVALID_OPTION_SELECTION", "Invalid option selection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Invalid quantity", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainErrorSimple("SUBMISSION_FAILED", "Order submission failed, cart preserved", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
