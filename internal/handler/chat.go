package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafidhani/tukang-backend/internal/repository"
)

// ChatHandler serves the chat endpoints. The history is a single global
// thread shared by all users; messages are polled, not pushed.
type ChatHandler struct {
	Chats *repository.ChatRepo
}

func NewChatHandler(ch *repository.ChatRepo) *ChatHandler {
	return &ChatHandler{Chats: ch}
}

type sendChatReq struct {
	SenderID   uint64 `json:"sender_id"`
	ReceiverID uint64 `json:"receiver_id"`
	Message    string `json:"message"`
}

type chatJSON struct {
	ID         uint64    `json:"id"`
	SenderID   uint64    `json:"sender_id"`
	ReceiverID uint64    `json:"receiver_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// List handles GET /api/chats, ascending by creation time.
func (h *ChatHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chats, err := h.Chats.ListAsc(ctx)
	if err != nil {
		c.Logger().Errorf("chats: list: %v", err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}
	data := make([]chatJSON, 0, len(chats))
	for _, m := range chats {
		data = append(data, chatJSON{
			ID:         m.ID,
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			Message:    m.Message,
			CreatedAt:  m.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

// Send handles POST /api/chats. Empty or whitespace-only messages are
// rejected before any statement is issued. The echoed created_at is the
// server's current time, an approximation of the database's own value;
// the authoritative timestamp is read back on the next List.
func (h *ChatHandler) Send(c echo.Context) error {
	var req sendChatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "body tidak valid"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Pesan kosong"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Chats.Create(ctx, req.SenderID, req.ReceiverID, req.Message)
	if err != nil {
		c.Logger().Errorf("chats: insert: %v", err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": chatJSON{
			ID:         id,
			SenderID:   req.SenderID,
			ReceiverID: req.ReceiverID,
			Message:    req.Message,
			CreatedAt:  time.Now().UTC(),
		},
	})
}
