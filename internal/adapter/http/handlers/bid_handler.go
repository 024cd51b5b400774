package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "freightdesk/internal/adapter/http/dto/request"
	response "freightdesk/internal/adapter/http/dto/response"
	"freightdesk/internal/domain/entities"
	"freightdesk/internal/usecase"
	"freightdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidBidID      = pkg.NewDomainErrorSimple("INVALID_BID_ID", "Invalid bid id", http.StatusBadRequest)
)

// BidHandler covers the vendor quote flow and the shipper's award and
// counter-offer actions. Mutations return the refreshed tender board so
// the client never renders stale state.
type BidHandler struct {
	usecase  usecase.IBidUseCase
	baseHost string
}

func NewBidHandler(uc usecase.IBidUseCase, baseHost string) *BidHandler {
	return &BidHandler{usecase: uc, baseHost: baseHost}
}

// Submit places a vendor quote on a lane of the tender in the path.
func (h *BidHandler) Submit(c *gin.Context) {
	session, _ := SessionFromContext(c)

	rfqID, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidRFQID.HTTPStatus, errInvalidRFQID.ToHTTPError())
		return
	}

	var payload request.BidCreateRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPErrorWithForm(payload))
		return
	}

	file, err := readUpload(c, "file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", "Could not read the attached file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithForm(payload))
		return
	}

	rfq, err := h.usecase.Submit(c.Request.Context(), session, rfqID, payload.ToParams(file))
	if err != nil {
		appErr := mapBidError(err)
		if appErr.Code == codeSessionExpired {
			respondError(c, appErr)
			return
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithForm(payload))
		return
	}

	c.JSON(http.StatusCreated, response.BuildRFQDetail(session, rfq, h.baseHost))
}

// Award locks in a winning quote. The refreshed board may not carry the
// contract file yet; generation is asynchronous upstream.
func (h *BidHandler) Award(c *gin.Context) {
	h.mutateBid(c, func(ctx *gin.Context, s entities.Session, rfqID, bidID int64) (entities.RFQ, error) {
		return h.usecase.Award(ctx.Request.Context(), s, rfqID, bidID)
	})
}

func (h *BidHandler) MakeCounter(c *gin.Context) {
	session, _ := SessionFromContext(c)

	rfqID, bidID, ok := bidPath(c)
	if !ok {
		return
	}

	var payload request.CounterOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	rfq, err := h.usecase.MakeCounter(c.Request.Context(), session, rfqID, bidID, payload.ResolveAmount())
	if err != nil {
		respondError(c, mapBidError(err))
		return
	}

	c.JSON(http.StatusOK, response.BuildRFQDetail(session, rfq, h.baseHost))
}

func (h *BidHandler) AcceptCounter(c *gin.Context) {
	h.respondCounter(c, true)
}

func (h *BidHandler) RejectCounter(c *gin.Context) {
	h.respondCounter(c, false)
}

func (h *BidHandler) respondCounter(c *gin.Context, accept bool) {
	h.mutateBid(c, func(ctx *gin.Context, s entities.Session, rfqID, bidID int64) (entities.RFQ, error) {
		return h.usecase.RespondCounter(ctx.Request.Context(), s, rfqID, bidID, accept)
	})
}

// MyBids renders the vendor quote ledger, filtered by the optional q
// search term. KPIs are computed before filtering.
func (h *BidHandler) MyBids(c *gin.Context) {
	session, _ := SessionFromContext(c)

	bids, err := h.usecase.MyBids(c.Request.Context(), session)
	if err != nil {
		respondError(c, mapBidError(err))
		return
	}

	c.JSON(http.StatusOK, response.BuildMyBids(bids, c.Query("q"), h.baseHost))
}

func (h *BidHandler) mutateBid(c *gin.Context, op func(*gin.Context, entities.Session, int64, int64) (entities.RFQ, error)) {
	session, _ := SessionFromContext(c)

	rfqID, bidID, ok := bidPath(c)
	if !ok {
		return
	}

	rfq, err := op(c, session, rfqID, bidID)
	if err != nil {
		respondError(c, mapBidError(err))
		return
	}

	c.JSON(http.StatusOK, response.BuildRFQDetail(session, rfq, h.baseHost))
}

// bidPath parses the /rfqs/:id/bids/:bid_id route pair, writing the
// error response itself on failure.
func bidPath(c *gin.Context) (rfqID, bidID int64, ok bool) {
	rfqID, ok = pathID(c, "id")
	if !ok {
		c.JSON(errInvalidRFQID.HTTPStatus, errInvalidRFQID.ToHTTPError())
		return 0, 0, false
	}
	bidID, ok = pathID(c, "bid_id")
	if !ok {
		c.JSON(errInvalidBidID.HTTPStatus, errInvalidBidID.ToHTTPError())
		return 0, 0, false
	}
	return rfqID, bidID, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRFQID):
		return errInvalidRFQID
	case errors.Is(err, usecase.ErrInvalidBidID):
		return errInvalidBidID
	case errors.Is(err, usecase.ErrNotVendor):
		return pkg.NewDomainErrorSimple("NOT_VENDOR", "Only carrier accounts can submit quotes", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotOrganization):
		return pkg.NewDomainErrorSimple("NOT_ORGANIZATION", "Only shipper accounts can manage awards", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidBidAmount),
		errors.Is(err, usecase.ErrInvalidTransitTime),
		errors.Is(err, usecase.ErrMissingValidUntil),
		errors.Is(err, usecase.ErrInvalidCounterAmount):
		return pkg.NewDomainError("INVALID_BID_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLaneAlreadyAwarded):
		return pkg.NewDomainErrorSimple("LANE_ALREADY_AWARDED", "This lane already has an awarded contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrCounterAlreadyPending):
		return pkg.NewDomainErrorSimple("COUNTER_ALREADY_PENDING", "A counter-offer is already awaiting the vendor's response", http.StatusConflict)
	case errors.Is(err, usecase.ErrCounterNotOnWinningBid):
		return pkg.NewDomainErrorSimple("BID_ALREADY_AWARDED", "This quote has already been awarded", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingCounter):
		return pkg.NewDomainErrorSimple("NO_PENDING_COUNTER", "There is no counter-offer awaiting a response", http.StatusConflict)
	case errors.Is(err, usecase.ErrBidNotInRFQ):
		return pkg.NewDomainErrorSimple("BID_NOT_IN_RFQ", "The bid does not belong to this tender", http.StatusNotFound)
	default:
		return mapUpstreamError(err)
	}
}
