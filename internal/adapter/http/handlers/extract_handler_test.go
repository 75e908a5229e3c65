package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoicedash/internal/adapter/http/handlers/mocks"
	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newExtractRouter(h *ExtractHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/extract", h.Extract)
	return r
}

func postExtract(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/extract", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractHandler_Extract(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExtractionUseCase(ctrl)
		r := newExtractRouter(NewExtractHandler(uc))

		for _, body := range []string{`{}`, `{"fileId":"file-1"}`, `{"model":"gemini"}`} {
			if w := postExtract(r, body); w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("invalid model", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExtractionUseCase(ctrl)
		r := newExtractRouter(NewExtractHandler(uc))

		uc.EXPECT().Extract(gomock.Any(), "file-1", "gpt-4").
			Return(entities.InvoiceRecord{}, usecase.ErrInvalidExtractionModel)

		if w := postExtract(r, `{"fileId":"file-1","model":"gpt-4"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExtractionUseCase(ctrl)
		r := newExtractRouter(NewExtractHandler(uc))

		uc.EXPECT().Extract(gomock.Any(), "missing", "gemini").
			Return(entities.InvoiceRecord{}, usecase.ErrFileNotFound)

		if w := postExtract(r, `{"fileId":"missing","model":"gemini"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("extraction failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExtractionUseCase(ctrl)
		r := newExtractRouter(NewExtractHandler(uc))

		uc.EXPECT().Extract(gomock.Any(), "file-1", "groq").
			Return(entities.InvoiceRecord{}, fmt.Errorf("%w: upstream timeout", usecase.ErrExtractionFailed))

		w := postExtract(r, `{"fileId":"file-1","model":"groq"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("EXTRACTION_FAILED")) {
			t.Fatalf("expected EXTRACTION_FAILED code, got %s", w.Body.String())
		}
	})

	t.Run("extracted fields returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExtractionUseCase(ctrl)
		r := newExtractRouter(NewExtractHandler(uc))

		rec := entities.InvoiceRecord{
			Vendor: entities.Vendor{Name: "Acme Corp"},
			Invoice: entities.InvoiceDetails{
				Number:     "INV-001",
				Currency:   "USD",
				Subtotal:   35,
				TaxPercent: 10,
				Total:      38.5,
				LineItems: []entities.LineItem{
					{Description: "widget", UnitPrice: 10, Quantity: 2, Total: 20},
					{Description: "gadget", UnitPrice: 5, Quantity: 3, Total: 15},
				},
			},
		}
		uc.EXPECT().Extract(gomock.Any(), "file-1", "gemini").Return(rec, nil)

		w := postExtract(r, `{"fileId":"file-1","model":"gemini"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := body["id"]; ok {
			t.Fatalf("extraction result must not carry an id: %s", w.Body.String())
		}
		invoice, ok := body["invoice"].(map[string]any)
		if !ok || invoice["total"] != 38.5 {
			t.Fatalf("unexpected invoice payload: %s", w.Body.String())
		}
	})
}
