package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coder-chat/internal/chat"
	"coder-chat/internal/middleware"
	"coder-chat/pkg/response"
)

// Reply godoc
// @Summary     Ask for a complete answer
// @Description Generates the whole answer for prompt within the caller's session and returns it at once.
// @Tags        Chat
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body body promptReq true "Prompt"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Reply(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptReq(c)
	if err != nil {
		response.Error(c, h.requestError(err), nil)
		return
	}

	output, err := h.uc.Reply(ctx, middleware.GetScope(c), req.toReplyInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reply: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReplyResp(output))
}

// Stream godoc
// @Summary     Stream an answer
// @Description Streams the answer as Server-Sent Events. Every frame is "data: <chunk>" and the stream ends when generation completes.
// @Tags        Chat
// @Accept      json,x-www-form-urlencoded
// @Produce     text/event-stream
// @Param       body body promptReq true "Prompt"
// @Success     200 {string} string "event stream"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/stream [POST]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptReq(c)
	if err != nil {
		response.Error(c, h.requestError(err), nil)
		return
	}

	setSSEHeaders(c)
	c.Status(http.StatusOK)

	written := false
	var writeErr error
	emit := func(ev chat.StreamEvent) error {
		if err := writeSSEData(c.Writer, ev.Text); err != nil {
			writeErr = err
			return err
		}
		c.Writer.Flush()
		written = true
		return nil
	}

	_, err = h.uc.Stream(ctx, middleware.GetScope(c), req.toStreamInput(), emit)
	switch {
	case err == nil:
	case writeErr != nil, ctx.Err() != nil, errors.Is(err, context.Canceled):
		h.l.Infof(ctx, "uc.Stream: client disconnected: %v", err)
	default:
		h.l.Errorf(ctx, "uc.Stream: %v", err)
		if !written {
			_ = writeSSEData(c.Writer, response.DefaultErrorMessage)
			c.Writer.Flush()
		}
	}
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the caller's session turns in order.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Clear godoc
// @Summary     Clear conversation history
// @Description Resets the caller's session history to empty.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetResponse godoc
// @Summary     Ask for an answer (form endpoint)
// @Description Form endpoint used by the chat page. Returns {"message": answer}.
// @Tags        Legacy
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       prompt formData string true "Prompt"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Router      /get_response [POST]
func (h *handler) GetResponse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptReq(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, MsgEmptyPrompt)
		return
	}

	output, err := h.uc.Reply(ctx, middleware.GetScope(c), req.toReplyInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reply: %v", err)
		status, _ := h.mapError(err)
		if status == http.StatusBadRequest {
			response.Fail(c, status, MsgEmptyPrompt)
			return
		}
		response.Message(c, http.StatusOK, MsgFailed)
		return
	}

	response.Message(c, http.StatusOK, output.Message)
}

// ClearSession godoc
// @Summary     Clear conversation history (form endpoint)
// @Tags        Legacy
// @Produce     json
// @Success     200 {object} response.SuccessResp
// @Router      /clear [POST]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Fail(c, http.StatusInternalServerError, response.DefaultErrorMessage)
		return
	}

	response.Success(c)
}

func (h *handler) requestError(err error) error {
	if errors.Is(err, chat.ErrEmptyInput) {
		return err
	}
	return errInvalidBody
}

func (h *handler) respondError(c *gin.Context, err error) {
	status, mapped := h.mapError(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c, mapped)
		return
	}
	response.Error(c, mapped, nil)
}
