package freightapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"freightdesk/internal/domain/entities"
)

const (
	defaultBaseURL        = "http://127.0.0.1:8000/api"
	defaultTimeoutSeconds = 60
)

// Gateway is the one HTTP client the portal uses against the freight
// API. The timeout is deliberately generous: the backend cold-starts on
// free-tier hosting and a short timeout would misreport it as down.
//
// Every call takes the bearer token explicitly. The token always comes
// from the session loaded from durable storage at request entry, so a
// request can never carry a stale in-memory copy.
type Gateway struct {
	baseURL string
	client  *http.Client
}

func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// NewGatewayFromEnv builds the gateway from FREIGHT_API_URL and
// FREIGHT_API_TIMEOUT_SECONDS.
func NewGatewayFromEnv() *Gateway {
	base := getenvDefault("FREIGHT_API_URL", defaultBaseURL)
	seconds, err := strconv.Atoi(getenvDefault("FREIGHT_API_TIMEOUT_SECONDS", ""))
	if err != nil || seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}
	log.Printf("[freight][gateway] configured base_url=%s timeout=%ds", base, seconds)
	return NewGateway(base, time.Duration(seconds)*time.Second)
}

// BaseHost returns the scheme://host part of the base URL, used to
// resolve relative file paths the API puts in responses.
func (g *Gateway) BaseHost() string {
	rest := g.baseURL
	if i := strings.Index(rest, "://"); i >= 0 {
		if j := strings.Index(rest[i+3:], "/"); j >= 0 {
			return rest[:i+3+j]
		}
	}
	return rest
}

// LoginResult is the credential-exchange response.
type LoginResult struct {
	Access      string        `json:"access"`
	Role        entities.Role `json:"role"`
	Username    string        `json:"username"`
	CompanyName string        `json:"company_name"`
}

// Login exchanges credentials for a bearer token. It is the only call
// issued without a token; a 401 here means bad credentials, not an
// expired session.
func (g *Gateway) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return LoginResult{}, err
	}

	var out LoginResult
	if err := g.do(ctx, "", http.MethodPost, "/users/login/", "application/json", bytes.NewReader(body), &out); err != nil {
		return LoginResult{}, err
	}
	if out.Username == "" {
		out.Username = username
	}
	return out, nil
}

// ListRFQs fetches the RFQs visible to the caller; the server applies
// the role scoping (vendors see the open market, orgs their own).
func (g *Gateway) ListRFQs(ctx context.Context, token string) ([]entities.RFQ, error) {
	var out []entities.RFQ
	if err := g.do(ctx, token, http.MethodGet, "/rfqs/", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRFQ fetches one RFQ with nested shipments and bids.
func (g *Gateway) GetRFQ(ctx context.Context, token string, id int64) (entities.RFQ, error) {
	var out entities.RFQ
	if err := g.do(ctx, token, http.MethodGet, fmt.Sprintf("/rfqs/%d/", id), "", nil, &out); err != nil {
		return entities.RFQ{}, err
	}
	return out, nil
}

// Upload is an optional file attachment for a multipart create.
type Upload struct {
	Filename string
	Content  []byte
}

// CreateRFQParams is the tender creation form. Status is always
// submitted as OPEN, matching the form screen.
type CreateRFQParams struct {
	Title              string
	Description        string
	Deadline           string
	VisibleTargetPrice bool
	VisibleBids        bool
	File               *Upload
}

// CreateRFQ publishes a new tender via multipart form data.
func (g *Gateway) CreateRFQ(ctx context.Context, token string, p CreateRFQParams) (entities.RFQ, error) {
	fields := map[string]string{
		"title":                p.Title,
		"description":          p.Description,
		"deadline":             p.Deadline,
		"visible_target_price": strconv.FormatBool(p.VisibleTargetPrice),
		"visible_bids":         strconv.FormatBool(p.VisibleBids),
		"status":               string(entities.RFQStatusOpen),
	}
	body, contentType, err := encodeMultipart(fields, p.File)
	if err != nil {
		return entities.RFQ{}, err
	}

	var out entities.RFQ
	if err := g.do(ctx, token, http.MethodPost, "/rfqs/", contentType, body, &out); err != nil {
		return entities.RFQ{}, err
	}
	return out, nil
}

// CreateShipmentParams adds a lane to an open RFQ. TargetPrice is
// omitted from the payload when empty.
type CreateShipmentParams struct {
	RFQID           int64
	OriginPort      string
	DestinationPort string
	ContainerType   string
	Volume          int
	TargetPrice     string
}

func (g *Gateway) CreateShipment(ctx context.Context, token string, p CreateShipmentParams) error {
	payload := map[string]any{
		"rfq":              p.RFQID,
		"origin_port":      p.OriginPort,
		"destination_port": p.DestinationPort,
		"container_type":   p.ContainerType,
		"volume":           p.Volume,
	}
	if p.TargetPrice != "" {
		payload["target_price"] = p.TargetPrice
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return g.do(ctx, token, http.MethodPost, "/shipments/", "application/json", bytes.NewReader(body), nil)
}

// CreateBidParams is a vendor quote on one lane. The server enforces
// one bid per lane per vendor; a second attempt comes back as an
// *APIError for the screen to surface.
type CreateBidParams struct {
	ShipmentID        int64
	Amount            string
	TransitTimeDays   int
	FreeDaysDemurrage int
	ValidUntil        string
	File              *Upload
}

func (g *Gateway) CreateBid(ctx context.Context, token string, p CreateBidParams) error {
	fields := map[string]string{
		"shipment":            strconv.FormatInt(p.ShipmentID, 10),
		"amount":              p.Amount,
		"transit_time_days":   strconv.Itoa(p.TransitTimeDays),
		"free_days_demurrage": strconv.Itoa(p.FreeDaysDemurrage),
		"valid_until":         p.ValidUntil,
	}
	body, contentType, err := encodeMultipart(fields, p.File)
	if err != nil {
		return err
	}
	return g.do(ctx, token, http.MethodPost, "/bids/", contentType, body, nil)
}

// ListMyBids fetches the vendor's own bids, joined with RFQ title and
// lane ports by the server.
func (g *Gateway) ListMyBids(ctx context.Context, token string) ([]entities.Bid, error) {
	var out []entities.Bid
	if err := g.do(ctx, token, http.MethodGet, "/bids/", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AwardBid locks the contract to one bid. Irreversible; the contract
// PDF is generated asynchronously on the server after this returns.
func (g *Gateway) AwardBid(ctx context.Context, token string, bidID int64) error {
	return g.do(ctx, token, http.MethodPost, fmt.Sprintf("/bids/%d/award/", bidID), "application/json", strings.NewReader("{}"), nil)
}

// MakeCounterOffer proposes an alternate price on a bid.
func (g *Gateway) MakeCounterOffer(ctx context.Context, token string, bidID int64, amount string) error {
	body, err := json.Marshal(map[string]string{"counter_amount": amount})
	if err != nil {
		return err
	}
	return g.do(ctx, token, http.MethodPost, fmt.Sprintf("/bids/%d/make_counter/", bidID), "application/json", bytes.NewReader(body), nil)
}

// AcceptCounter accepts a pending counter-offer on the vendor's bid.
func (g *Gateway) AcceptCounter(ctx context.Context, token string, bidID int64) error {
	return g.do(ctx, token, http.MethodPost, fmt.Sprintf("/bids/%d/accept_counter/", bidID), "application/json", strings.NewReader("{}"), nil)
}

// RejectCounter rejects a pending counter-offer on the vendor's bid.
func (g *Gateway) RejectCounter(ctx context.Context, token string, bidID int64) error {
	return g.do(ctx, token, http.MethodPost, fmt.Sprintf("/bids/%d/reject_counter/", bidID), "application/json", strings.NewReader("{}"), nil)
}

// GetDashboardStats fetches the role-scoped aggregate figures.
func (g *Gateway) GetDashboardStats(ctx context.Context, token string) (entities.DashboardStats, error) {
	var out entities.DashboardStats
	if err := g.do(ctx, token, http.MethodGet, "/analytics/stats/", "", nil, &out); err != nil {
		return entities.DashboardStats{}, err
	}
	return out, nil
}

// ListBidMessages fetches the chat history for a bid.
func (g *Gateway) ListBidMessages(ctx context.Context, token string, bidID int64) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	if err := g.do(ctx, token, http.MethodGet, fmt.Sprintf("/chat/messages/bid/%d/", bidID), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostBidMessage appends one chat message to a bid's thread.
func (g *Gateway) PostBidMessage(ctx context.Context, token string, bidID int64, message string) error {
	body, err := json.Marshal(map[string]any{"bid": bidID, "message": message})
	if err != nil {
		return err
	}
	return g.do(ctx, token, http.MethodPost, "/chat/messages/", "application/json", bytes.NewReader(body), nil)
}

// do issues one request and decodes the response into out (when out is
// non-nil). All error classification lives here so callers only ever
// see the taxonomy from errors.go.
func (g *Gateway) do(ctx context.Context, token, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		// Timeouts and connection failures both land here; callers show
		// the "waking up" message rather than a generic error.
		log.Printf("[freight][gateway] %s %s transport error: %v", method, path, err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		log.Printf("[freight][gateway] %s %s upstream %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrServiceUnavailable, err)
	}
	return nil
}

// extractMessage pulls the human-readable message out of the API's
// varied 4xx bodies ({"error": ...}, {"detail": ...}, DRF field maps).
func extractMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil || len(raw) == 0 {
		return "Request rejected by the freight service."
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, key := range []string{"error", "detail", "message"} {
		if v, ok := m[key]; ok {
			var s string
			if json.Unmarshal(v, &s) == nil && s != "" {
				return s
			}
		}
	}
	// DRF validation errors: {"field": ["msg", ...], ...}
	for _, v := range m {
		var list []string
		if json.Unmarshal(v, &list) == nil && len(list) > 0 {
			return list[0]
		}
	}
	return "Request rejected by the freight service."
}

func encodeMultipart(fields map[string]string, file *Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if file != nil {
		part, err := w.CreateFormFile("file", file.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
