package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Gogul-D/Ai-bot/api/http/presenter"
	"github.com/Gogul-D/Ai-bot/pkg/chat"
)

// ChatHandler serves the prompt/answer endpoint.
type ChatHandler struct {
	uc chat.UseCase
}

// NewChatHandler returns an error when uc is nil.
func NewChatHandler(uc chat.UseCase) (*ChatHandler, error) {
	if uc == nil {
		return nil, errors.New("handlers: chat use case must not be nil")
	}
	return &ChatHandler{uc: uc}, nil
}

type chatRequest struct {
	Prompt *string `json:"prompt" binding:"required"`
}

var errMissingPrompt = errors.New("prompt is required")

// parseChatRequest decodes the body as JSON when no Content-Type is sent.
// An absent or null prompt is a malformed request, not a blank one.
func parseChatRequest(c *fiber.Ctx) (chatRequest, error) {
	var req chatRequest
	var err error
	if c.Get(fiber.HeaderContentType) == "" {
		err = c.App().Config().JSONDecoder(c.Body(), &req)
	} else {
		err = c.BodyParser(&req)
	}
	if err != nil {
		return chatRequest{}, err
	}
	if req.Prompt == nil {
		return chatRequest{}, errMissingPrompt
	}
	return req, nil
}

// Chat forwards a prompt to the configured model and returns its text.
// @Summary Generate a reply
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body chatRequest true "Prompt"
// @Success 200 {object} chat.Response
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	req, err := parseChatRequest(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	out, err := h.uc.Chat(c.UserContext(), *req.Prompt)
	if err != nil {
		ce := chat.Classify(err)
		status := statusFor(ce.Kind)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(c.UserContext(), "chat_failed",
				"request_id", requestID(c),
				"kind", ce.Kind,
				"err", ce.Err,
			)
		} else {
			slog.DebugContext(c.UserContext(), "chat_rejected",
				"request_id", requestID(c),
				"kind", ce.Kind,
			)
		}
		return presenter.Error(c, status, ce.Detail)
	}
	return presenter.JSON(c, http.StatusOK, out)
}

func statusFor(kind chat.Kind) int {
	switch kind {
	case chat.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
