package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"freightdesk/internal/adapter/http/handlers/mocks"
	"freightdesk/internal/domain/entities"
	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBidHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	quoteForm := func(fields map[string]string) (*bytes.Buffer, string) {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for k, v := range fields {
			_ = mw.WriteField(k, v)
		}
		_ = mw.Close()
		return buf, mw.FormDataContentType()
	}

	t.Run("success returns the refreshed board", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids", withSession(vendorSession()), h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), int64(7), gomock.AssignableToTypeOf(freightapi.CreateBidParams{})).DoAndReturn(
			func(_ context.Context, _ entities.Session, _ int64, p freightapi.CreateBidParams) (entities.RFQ, error) {
				if p.ShipmentID != 31 || p.Amount != "3000" || p.FreeDaysDemurrage != 14 {
					t.Fatalf("unexpected params: %+v", p)
				}
				return entities.RFQ{ID: 7, Status: entities.RFQStatusOpen}, nil
			},
		)

		body, contentType := quoteForm(map[string]string{
			"shipment":          "31",
			"amount":            "3000",
			"transit_time_days": "25",
			"valid_until":       "2026-10-01",
		})
		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate quote carries the upstream message verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids", withSession(vendorSession()), h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), int64(7), gomock.Any()).
			Return(entities.RFQ{}, &freightapi.APIError{StatusCode: http.StatusBadRequest, Message: "You can only bid once per lane."})

		body, contentType := quoteForm(map[string]string{
			"shipment":          "31",
			"amount":            "3000",
			"transit_time_days": "25",
			"valid_until":       "2026-10-01",
		})
		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["message"] != "You can only bid once per lane." {
			t.Fatalf("expected the server's own message, got %s", w.Body.String())
		}
		if _, ok := resp["form"]; !ok {
			t.Fatalf("expected the form echoed back, got %s", w.Body.String())
		}
	})

	t.Run("invalid rfq id in path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids", withSession(vendorSession()), h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/abc/bids", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBidHandler_Award(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids/:bid_id/award", withSession(orgSession()), h.Award)

		uc.EXPECT().Award(gomock.Any(), gomock.Any(), int64(7), int64(101)).
			Return(entities.RFQ{ID: 7, Status: entities.RFQStatusOpen}, nil)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids/101/award", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("lane already awarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids/:bid_id/award", withSession(orgSession()), h.Award)

		uc.EXPECT().Award(gomock.Any(), gomock.Any(), int64(7), int64(101)).
			Return(entities.RFQ{}, usecase.ErrLaneAlreadyAwarded)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids/101/award", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "LANE_ALREADY_AWARDED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid bid id in path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids/:bid_id/award", withSession(orgSession()), h.Award)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids/abc/award", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBidHandler_MakeCounter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids/:bid_id/counter", withSession(orgSession()), h.MakeCounter)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids/101/counter", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("counter already pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids/:bid_id/counter", withSession(orgSession()), h.MakeCounter)

		uc.EXPECT().MakeCounter(gomock.Any(), gomock.Any(), int64(7), int64(101), "2800").
			Return(entities.RFQ{}, usecase.ErrCounterAlreadyPending)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids/101/counter", bytes.NewBufferString(`{"counter_amount":"2800"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success trims the amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids/:bid_id/counter", withSession(orgSession()), h.MakeCounter)

		uc.EXPECT().MakeCounter(gomock.Any(), gomock.Any(), int64(7), int64(101), "2800").
			Return(entities.RFQ{ID: 7}, nil)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids/101/counter", bytes.NewBufferString(`{"counter_amount":" 2800 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBidHandler_RespondCounter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids/:bid_id/counter/accept", withSession(vendorSession()), h.AcceptCounter)

		uc.EXPECT().RespondCounter(gomock.Any(), gomock.Any(), int64(7), int64(101), true).
			Return(entities.RFQ{ID: 7}, nil)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids/101/counter/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject with no pending counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.POST("/portal/rfqs/:id/bids/:bid_id/counter/reject", withSession(vendorSession()), h.RejectCounter)

		uc.EXPECT().RespondCounter(gomock.Any(), gomock.Any(), int64(7), int64(101), false).
			Return(entities.RFQ{}, usecase.ErrNoPendingCounter)

		req := httptest.NewRequest(http.MethodPost, "/portal/rfqs/7/bids/101/counter/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBidHandler_MyBids(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters by the q param", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.GET("/portal/my-bids", withSession(vendorSession()), h.MyBids)

		uc.EXPECT().MyBids(gomock.Any(), gomock.Any()).Return([]entities.Bid{
			{ID: 101, RFQTitle: "Q3 Ocean Freight", OriginPort: "Shanghai", DestinationPort: "Santos", IsWinner: true},
			{ID: 102, RFQTitle: "Reefer Lanes", OriginPort: "Rotterdam", DestinationPort: "Singapore"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/portal/my-bids?q=rotterdam", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["total"] != float64(2) || resp["won"] != float64(1) {
			t.Fatalf("kpis must cover the full set: %s", w.Body.String())
		}
		rows, ok := resp["bids"].([]any)
		if !ok || len(rows) != 1 {
			t.Fatalf("expected one filtered row, got %s", w.Body.String())
		}
	})

	t.Run("role gate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		h := NewBidHandler(uc, "")

		r := gin.New()
		r.GET("/portal/my-bids", withSession(orgSession()), h.MyBids)

		uc.EXPECT().MyBids(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrNotVendor)

		req := httptest.NewRequest(http.MethodGet, "/portal/my-bids", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestMapBidError(t *testing.T) {
	if got := mapBidError(usecase.ErrNotVendor); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapBidError(usecase.ErrInvalidBidAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBidError(usecase.ErrLaneAlreadyAwarded); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBidError(usecase.ErrBidNotInRFQ); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBidError(freightapi.ErrUnauthorized); got.Code != "SESSION_EXPIRED" {
		t.Fatalf("expected session expired mapping")
	}
	if got := mapBidError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
