package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "freightdesk/internal/adapter/http/dto/request"
	response "freightdesk/internal/adapter/http/dto/response"
	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase"
	"freightdesk/pkg"

	"github.com/gin-gonic/gin"
)

const defaultChatPollInterval = 3 * time.Second

// ChatHandler serves the per-bid negotiation drawer: history, send, and
// a server-sent-events stream that re-polls the upstream thread for as
// long as the drawer stays open. Closing the drawer closes the request
// and with it the poll loop.
type ChatHandler struct {
	usecase      usecase.IChatUseCase
	pollInterval time.Duration
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc, pollInterval: defaultChatPollInterval}
}

func (h *ChatHandler) History(c *gin.Context) {
	session, _ := SessionFromContext(c)

	bidID, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidBidID.HTTPStatus, errInvalidBidID.ToHTTPError())
		return
	}

	messages, err := h.usecase.History(c.Request.Context(), session, bidID)
	if err != nil {
		respondError(c, mapChatError(err))
		return
	}

	c.JSON(http.StatusOK, response.BuildChatThread(bidID, messages))
}

// Post sends a message and returns the refreshed thread.
func (h *ChatHandler) Post(c *gin.Context) {
	session, _ := SessionFromContext(c)

	bidID, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidBidID.HTTPStatus, errInvalidBidID.ToHTTPError())
		return
	}

	var payload request.ChatMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_MESSAGE", "Message cannot be empty", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	messages, err := h.usecase.Post(c.Request.Context(), session, bidID, payload.ResolveMessage())
	if err != nil {
		respondError(c, mapChatError(err))
		return
	}

	c.JSON(http.StatusCreated, response.BuildChatThread(bidID, messages))
}

// Stream pushes the thread over SSE, once immediately and then on every
// poll tick. Ticks never overlap: each poll completes before the next
// starts. Transient upstream failures keep the stream alive; an expired
// session ends it with a terminal event.
func (h *ChatHandler) Stream(c *gin.Context) {
	session, _ := SessionFromContext(c)

	bidID, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidBidID.HTTPStatus, errInvalidBidID.ToHTTPError())
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ctx := c.Request.Context()
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	send := func() bool {
		messages, err := h.usecase.History(ctx, session, bidID)
		if err != nil {
			if errors.Is(err, usecase.ErrSessionExpired) || errors.Is(err, freightapi.ErrUnauthorized) {
				appErr := mapChatError(err)
				c.SSEvent("error", appErr.ToHTTPErrorWithRedirect(LoginPath))
				c.Writer.Flush()
				return false
			}
			log.Printf("[chat][handler] poll failed for bid=%d: %v", bidID, err)
			return true
		}
		c.SSEvent("thread", response.BuildChatThread(bidID, messages))
		c.Writer.Flush()
		return true
	}

	if !send() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !send() {
				return
			}
		}
	}
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBidID):
		return errInvalidBidID
	case errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("INVALID_MESSAGE", "Message cannot be empty", http.StatusBadRequest)
	default:
		return mapUpstreamError(err)
	}
}
