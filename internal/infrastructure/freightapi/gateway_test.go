package freightapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGateway_Login(t *testing.T) {
	t.Run("success without bearer header", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/users/login/" || r.Method != http.MethodPost {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if r.Header.Get("Authorization") != "" {
				t.Fatalf("login must not carry a bearer token")
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access":"tok-1","role":"ORG","company_name":"Acme Logistics"}`))
		}))
		defer srv.Close()

		g := NewGateway(srv.URL+"/api", time.Second)
		out, err := g.Login(context.Background(), "acme", "pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Access != "tok-1" || out.CompanyName != "Acme Logistics" {
			t.Fatalf("unexpected result: %+v", out)
		}
		// The login response omits the username; the caller's one is kept.
		if out.Username != "acme" {
			t.Fatalf("expected username fallback, got %q", out.Username)
		}
	})

	t.Run("401 surfaces as unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		g := NewGateway(srv.URL+"/api", time.Second)
		_, err := g.Login(context.Background(), "acme", "wrong")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestGateway_ErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{"401", http.StatusUnauthorized, "", func(t *testing.T, err error) {
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		}},
		{"403", http.StatusForbidden, "", func(t *testing.T, err error) {
			if !errors.Is(err, ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		}},
		{"404", http.StatusNotFound, "", func(t *testing.T, err error) {
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		}},
		{"500", http.StatusInternalServerError, "", func(t *testing.T, err error) {
			if !errors.Is(err, ErrServiceUnavailable) {
				t.Fatalf("expected ErrServiceUnavailable, got %v", err)
			}
		}},
		{"400 business rejection", http.StatusBadRequest, `{"error":"You can only bid once per lane."}`, func(t *testing.T, err error) {
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "You can only bid once per lane." {
				t.Fatalf("unexpected APIError: %+v", apiErr)
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			g := NewGateway(srv.URL+"/api", time.Second)
			_, err := g.ListRFQs(context.Background(), "tok-1")
			if err == nil {
				t.Fatalf("expected an error")
			}
			tc.check(t, err)
		})
	}

	t.Run("connection refused maps to service unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse from now on

		g := NewGateway(srv.URL+"/api", time.Second)
		_, err := g.ListRFQs(context.Background(), "tok-1")
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}

func TestGateway_BearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL+"/api", time.Second)
	if _, err := g.ListRFQs(context.Background(), "tok-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGateway_CreateBid(t *testing.T) {
	t.Run("multipart fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/bids/" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("expected multipart body: %v", err)
			}
			if r.FormValue("shipment") != "31" || r.FormValue("amount") != "3000" {
				t.Fatalf("unexpected form: %+v", r.MultipartForm.Value)
			}
			if r.FormValue("free_days_demurrage") != "14" {
				t.Fatalf("unexpected free days: %q", r.FormValue("free_days_demurrage"))
			}
			file, header, err := r.FormFile("file")
			if err != nil {
				t.Fatalf("expected attachment: %v", err)
			}
			defer file.Close()
			if header.Filename != "rates.pdf" {
				t.Fatalf("unexpected filename: %q", header.Filename)
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		g := NewGateway(srv.URL+"/api", time.Second)
		err := g.CreateBid(context.Background(), "tok-1", CreateBidParams{
			ShipmentID:        31,
			Amount:            "3000",
			TransitTimeDays:   25,
			FreeDaysDemurrage: 14,
			ValidUntil:        "2026-10-01",
			File:              &Upload{Filename: "rates.pdf", Content: []byte("%PDF-1.4")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no attachment omits the file part", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("expected multipart body: %v", err)
			}
			if _, _, err := r.FormFile("file"); err == nil {
				t.Fatalf("expected no file part")
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		g := NewGateway(srv.URL+"/api", time.Second)
		err := g.CreateBid(context.Background(), "tok-1", CreateBidParams{
			ShipmentID: 31, Amount: "3000", TransitTimeDays: 25, FreeDaysDemurrage: 14, ValidUntil: "2026-10-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGateway_CreateShipment(t *testing.T) {
	t.Run("empty target price is omitted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			body := string(raw)
			if strings.Contains(body, "target_price") {
				t.Fatalf("expected target_price omitted, got %s", body)
			}
			if !strings.Contains(body, `"rfq":7`) {
				t.Fatalf("expected rfq id in payload, got %s", body)
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		g := NewGateway(srv.URL+"/api", time.Second)
		err := g.CreateShipment(context.Background(), "tok-1", CreateShipmentParams{
			RFQID: 7, OriginPort: "Shanghai", DestinationPort: "Santos", ContainerType: "40HC", Volume: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExtractMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error key", `{"error":"Tender is closed."}`, "Tender is closed."},
		{"detail key", `{"detail":"Not found."}`, "Not found."},
		{"message key", `{"message":"Too late."}`, "Too late."},
		{"field errors", `{"amount":["Must be positive."]}`, "Must be positive."},
		{"plain text", `something broke`, "something broke"},
		{"empty body", ``, "Request rejected by the freight service."},
		{"unhelpful json", `{"weird":42}`, "Request rejected by the freight service."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractMessage(strings.NewReader(tc.body)); got != tc.want {
				t.Fatalf("extractMessage(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestGateway_BaseHost(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://freight-api.example.com/api", "https://freight-api.example.com"},
		{"http://127.0.0.1:8000/api", "http://127.0.0.1:8000"},
		{"https://freight-api.example.com", "https://freight-api.example.com"},
	}
	for _, tc := range cases {
		g := NewGateway(tc.base, time.Second)
		if got := g.BaseHost(); got != tc.want {
			t.Fatalf("BaseHost(%q) = %q, want %q", tc.base, got, tc.want)
		}
	}
}
