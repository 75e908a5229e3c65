package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoicedash/internal/adapter/http/handlers/mocks"
	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	invoices := api.Group("/invoices")
	{
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.POST("", h.Create)
		invoices.PUT("/:id", h.Update)
		invoices.DELETE("/:id", h.Delete)
	}
	return r
}

func TestInvoiceHandler_List(t *testing.T) {
	t.Run("passes query through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().List(gomock.Any(), "acme").Return([]entities.InvoiceRecord{{ID: "inv-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices?q=acme", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "inv-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty store yields empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().List(gomock.Any(), "").Return([]entities.InvoiceRecord{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestInvoiceHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.InvoiceRecord{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.InvoiceRecord{ID: "inv-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InvoiceRecord{}, usecase.ErrInvalidInvoicePayload)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"vendor":{"name":""}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InvoiceRecord{})).DoAndReturn(
			func(_ any, rec entities.InvoiceRecord) (entities.InvoiceRecord, error) {
				if rec.Vendor.Name != "Acme Corp" {
					t.Fatalf("unexpected draft: %+v", rec)
				}
				rec.ID = "inv-1"
				return rec, nil
			},
		)

		body := `{"vendor":{"name":"Acme Corp"},"invoice":{"number":"INV-001","lineItems":[]}}`
		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("repo failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InvoiceRecord{}, errors.New("db down"))

		body := `{"vendor":{"name":"Acme Corp"},"invoice":{"number":"INV-001"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.InvoiceRecord{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/invoices/missing", bytes.NewBufferString(`{"fileName":"a.pdf"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("partial body becomes patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "inv-1", gomock.AssignableToTypeOf(usecase.InvoicePatch{})).DoAndReturn(
			func(_ any, _ string, patch usecase.InvoicePatch) (entities.InvoiceRecord, error) {
				if patch.Vendor == nil || patch.Vendor.Name != "New Vendor" {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				if patch.Invoice != nil || patch.FileID != nil {
					t.Fatalf("absent sections must stay nil: %+v", patch)
				}
				return entities.InvoiceRecord{ID: "inv-1", Vendor: *patch.Vendor}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/api/invoices/inv-1", bytes.NewBufferString(`{"vendor":{"name":"New Vendor"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/invoices/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["message"] == "" {
			t.Fatalf("expected message body, got %s", w.Body.String())
		}
	})
}
