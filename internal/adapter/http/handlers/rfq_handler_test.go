package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freightdesk/internal/adapter/http/handlers/mocks"
	"freightdesk/internal/domain/entities"
	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRFQHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("org sees the create action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRFQUseCase(ctrl)
		h := NewRFQHandler(uc, "https://api.example.com")

		r := gin.New()
		r.GET("/portal/rfqs", withSession(orgSession()), h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.RFQ{{ID: 7, Title: "Q3 Ocean Freight"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/portal/rfqs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["can_create"] != true {
			t.Fatalf("expected can_create, got %s", w.Body.String())
		}
	})

	t.Run("expired session clears the cookie and redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRFQUseCase(ctrl)
		h := NewRFQHandler(uc, "")

		r := gin.New()
		r.GET("/portal/rfqs", withSession(orgSession()), h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrSessionExpired)

		req := httptest.NewRequest(http.MethodGet, "/portal/rfqs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"redirect":"/login"`) {
			t.Fatalf("expected login redirect, got %s", w.Body.String())
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].MaxAge != -1 {
			t.Fatalf("expected the cookie cleared, got %+v", cookies)
		}
	})
}

func TestRFQHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRFQUseCase(ctrl)
		h := NewRFQHandler(uc, "")

		r := gin.New()
		r.GET("/portal/rfqs/:id", withSession(orgSession()), h.Get)

		req := httptest.NewRequest(http.MethodGet, "/portal/rfqs/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("hidden tender maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRFQUseCase(ctrl)
		h := NewRFQHandler(uc, "")

		r := gin.New()
		r.GET("/portal/rfqs/:id", withSession(vendorSession()), h.Get)

		uc.EXPECT().Get(gomock.Any(), gomock.Any(), int64(9)).Return(entities.RFQ{}, freightapi.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/portal/rfqs/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRFQHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	multipartForm := func(fields map[string]string) (*bytes.Buffer, string) {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for k, v := range fields {
			_ = mw.WriteField(k, v)
		}
		_ = mw.Close()
		return buf, mw.FormDataContentType()
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRFQUseCase(ctrl)
		h := NewRFQHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs", withSession(orgSession()), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(freightapi.CreateRFQParams{})).DoAndReturn(
			func(_ context.Context, _ entities.Session, p freightapi.CreateRFQParams) (entities.RFQ, error) {
				if p.Title != "Q3 Ocean Freight" || p.Deadline != "2026-10-01" {
					t.Fatalf("unexpected params: %+v", p)
				}
				return entities.RFQ{ID: 7, Title: p.Title, Status: entities.RFQStatusOpen}, nil
			},
		)

		body, contentType := multipartForm(map[string]string{
			"title":    "Q3 Ocean Freight",
			"deadline": "2026-10-01",
		})
		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejection echoes the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRFQUseCase(ctrl)
		h := NewRFQHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs", withSession(vendorSession()), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RFQ{}, usecase.ErrNotOrganization)

		body, contentType := multipartForm(map[string]string{
			"title":    "Q3 Ocean Freight",
			"deadline": "2026-10-01",
		})
		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		form, ok := resp["form"].(map[string]any)
		if !ok || form["title"] != "Q3 Ocean Freight" {
			t.Fatalf("expected the form echoed back, got %s", w.Body.String())
		}
	})
}

func TestRFQHandler_AddShipment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns the refreshed board", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRFQUseCase(ctrl)
		h := NewRFQHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/shipments", withSession(orgSession()), h.AddShipment)

		uc.EXPECT().AddShipment(gomock.Any(), gomock.Any(), int64(7), gomock.AssignableToTypeOf(freightapi.CreateShipmentParams{})).DoAndReturn(
			func(_ context.Context, _ entities.Session, _ int64, p freightapi.CreateShipmentParams) (entities.RFQ, error) {
				if p.ContainerType != "40HC" || p.Volume != 1 {
					t.Fatalf("expected defaults applied, got %+v", p)
				}
				return entities.RFQ{ID: 7, Shipments: []entities.Shipment{{ID: 31}}}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/shipments",
			bytes.NewBufferString(`{"origin_port":"Shanghai","destination_port":"Santos"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation error echoes the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRFQUseCase(ctrl)
		h := NewRFQHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/shipments", withSession(orgSession()), h.AddShipment)

		uc.EXPECT().AddShipment(gomock.Any(), gomock.Any(), int64(7), gomock.Any()).Return(entities.RFQ{}, usecase.ErrInvalidTargetPrice)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/shipments",
			bytes.NewBufferString(`{"origin_port":"Shanghai","destination_port":"Santos","target_price":"-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if _, ok := resp["form"]; !ok {
			t.Fatalf("expected the form echoed back, got %s", w.Body.String())
		}
	})
}

func TestMapRFQError(t *testing.T) {
	if got := mapRFQError(usecase.ErrInvalidRFQID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRFQError(usecase.ErrNotOrganization); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapRFQError(usecase.ErrMissingTitle); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRFQError(usecase.ErrSessionExpired); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapRFQError(freightapi.ErrServiceUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapRFQError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
