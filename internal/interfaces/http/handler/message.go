package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/application/support"
	"github.com/Tanner253/BigsAckies-sub001/internal/interfaces/http/dto"
	"github.com/Tanner253/BigsAckies-sub001/internal/interfaces/http/middleware"
)

// MessageHandler handles customer and guest support messages
type MessageHandler struct {
	BaseHandler
	messageService *support.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *support.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Submit records a support inquiry. Authentication is optional: logged-in
// callers get the message linked to their account, guests supply contact
// details in the body.
func (h *MessageHandler) Submit(c *gin.Context) {
	var req support.SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	var userID *uuid.UUID
	if raw := middleware.GetJWTUserID(c); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err == nil {
			userID = &parsed
		}
	}

	msg, err := h.messageService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, msg)
}

// ListMine returns the caller's own messages
func (h *MessageHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	messages, err := h.messageService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, messages)
}

// List returns all messages for admins, optionally filtered by status
func (h *MessageHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.messageService.List(c.Request.Context(), support.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Status:   c.Query("status"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a message for admins and marks it read
func (h *MessageHandler) Get(c *gin.Context) {
	messageID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid message ID")
		return
	}

	msg, err := h.messageService.Get(c.Request.Context(), messageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, msg)
}

// Respond records an admin reply to a message
func (h *MessageHandler) Respond(c *gin.Context) {
	messageID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid message ID")
		return
	}

	var req support.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	msg, err := h.messageService.Respond(c.Request.Context(), messageID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, msg)
}

// Delete removes a message
func (h *MessageHandler) Delete(c *gin.Context) {
	messageID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid message ID")
		return
	}

	if err := h.messageService.Delete(c.Request.Context(), messageID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
