package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "freightdesk/internal/adapter/http/dto/request"
	response "freightdesk/internal/adapter/http/dto/response"
	"freightdesk/internal/usecase"
	"freightdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRFQPayload = pkg.NewDomainErrorSimple("INVALID_RFQ_INPUT", "Invalid tender payload", http.StatusBadRequest)
	errInvalidRFQID      = pkg.NewDomainErrorSimple("INVALID_RFQ_ID", "Invalid tender id", http.StatusBadRequest)
)

// RFQHandler serves the tender list, detail board and the shipper's
// create/add-lane forms.
type RFQHandler struct {
	usecase  usecase.IRFQUseCase
	baseHost string
}

func NewRFQHandler(uc usecase.IRFQUseCase, baseHost string) *RFQHandler {
	return &RFQHandler{usecase: uc, baseHost: baseHost}
}

func (h *RFQHandler) List(c *gin.Context) {
	session, _ := SessionFromContext(c)

	rfqs, err := h.usecase.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, mapRFQError(err))
		return
	}

	c.JSON(http.StatusOK, response.BuildRFQList(session, rfqs))
}

// Create publishes a tender from the multipart form. On rejection the
// submitted fields are echoed back so the form stays populated.
func (h *RFQHandler) Create(c *gin.Context) {
	session, _ := SessionFromContext(c)

	var payload request.RFQCreateRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidRFQPayload.HTTPStatus, errInvalidRFQPayload.ToHTTPErrorWithForm(payload))
		return
	}

	file, err := readUpload(c, "file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", "Could not read the attached file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithForm(payload))
		return
	}

	rfq, err := h.usecase.Create(c.Request.Context(), session, payload.ToParams(file))
	if err != nil {
		appErr := mapRFQError(err)
		if appErr.Code == codeSessionExpired {
			respondError(c, appErr)
			return
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithForm(payload))
		return
	}

	c.JSON(http.StatusCreated, response.BuildRFQDetail(session, rfq, h.baseHost))
}

func (h *RFQHandler) Get(c *gin.Context) {
	session, _ := SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidRFQID.HTTPStatus, errInvalidRFQID.ToHTTPError())
		return
	}

	rfq, err := h.usecase.Get(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, mapRFQError(err))
		return
	}

	c.JSON(http.StatusOK, response.BuildRFQDetail(session, rfq, h.baseHost))
}

// AddShipment appends a lane and returns the refreshed tender board.
func (h *RFQHandler) AddShipment(c *gin.Context) {
	session, _ := SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidRFQID.HTTPStatus, errInvalidRFQID.ToHTTPError())
		return
	}

	var payload request.ShipmentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRFQPayload.HTTPStatus, errInvalidRFQPayload.ToHTTPErrorWithForm(payload))
		return
	}

	rfq, err := h.usecase.AddShipment(c.Request.Context(), session, id, payload.ToParams())
	if err != nil {
		appErr := mapRFQError(err)
		if appErr.Code == codeSessionExpired {
			respondError(c, appErr)
			return
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithForm(payload))
		return
	}

	c.JSON(http.StatusCreated, response.BuildRFQDetail(session, rfq, h.baseHost))
}

func mapRFQError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRFQID):
		return errInvalidRFQID
	case errors.Is(err, usecase.ErrNotOrganization):
		return pkg.NewDomainErrorSimple("NOT_ORGANIZATION", "Only shipper accounts can manage tenders", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMissingTitle),
		errors.Is(err, usecase.ErrMissingDeadline),
		errors.Is(err, usecase.ErrMissingPorts),
		errors.Is(err, usecase.ErrInvalidVolume),
		errors.Is(err, usecase.ErrInvalidTargetPrice):
		return pkg.NewDomainError("INVALID_RFQ_INPUT", err.Error(), err, http.StatusBadRequest)
	default:
		return mapUpstreamError(err)
	}
}
