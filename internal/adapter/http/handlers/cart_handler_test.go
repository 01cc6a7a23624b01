package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/handlers/mocks"
	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCartHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		drafts.EXPECT().AddItem(gomock.Any(), 99, gomock.Any()).Return(entities.OrderItem{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"service_id":99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid option selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		drafts.EXPECT().AddItem(gomock.Any(), 1, []entities.SelectedOption{{OptionID: 9, ValueIndex: 0}}).
			Return(entities.OrderItem{}, usecase.ErrInvalidOptionSelection)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"service_id":1,"options":[{"option_id":9,"value_index":0}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		drafts.EXPECT().AddItem(gomock.Any(), 1, []entities.SelectedOption{{OptionID: 1, ValueIndex: 2}}).
			Return(entities.OrderItem{ID: "it-1", ServiceID: 1, Quantity: 1, TotalPrice: 35000}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"service_id":1,"options":[{"option_id":1,"value_index":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.PATCH("/v1/cart/items/:item_id/quantity", h.UpdateQuantity)

		drafts.EXPECT().UpdateQuantity(gomock.Any(), "it-1", -1).Return(usecase.ErrInvalidQuantity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items/it-1/quantity", bytes.NewBufferString(`{"quantity":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.PATCH("/v1/cart/items/:item_id/quantity", h.UpdateQuantity)

		drafts.EXPECT().UpdateQuantity(gomock.Any(), "it-1", 3).Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items/it-1/quantity", bytes.NewBufferString(`{"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCartHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.POST("/v1/cart/submit", h.Submit)

		auth.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{}, false)
		drafts.EXPECT().SubmitOrder(gomock.Any(), gomock.Nil()).Return(entities.Order{}, usecase.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("submission failure preserves cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.POST("/v1/cart/submit", h.Submit)

		auth.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{}, false)
		drafts.EXPECT().SubmitOrder(gomock.Any(), gomock.Nil()).Return(entities.Order{}, usecase.ErrSubmissionFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("authenticated submit stamps the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIOrderDraftUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewCartHandler(drafts, auth)

		r := gin.New()
		r.POST("/v1/cart/submit", h.Submit)

		auth.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{ID: "u-1", Name: "علی", Phone: "09120000000"}, true)
		drafts.EXPECT().SubmitOrder(gomock.Any(), &entities.CustomerInfo{ID: "u-1", Name: "علی", Phone: "09120000000"}).
			Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusPending, CustomerID: "u-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
