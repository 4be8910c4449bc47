package repository

import (
	"context"
	"database/sql"

	"github.com/rafidhani/tukang-backend/internal/model"
)

// ChatRepo provides access to the `chats` table. Messages are immutable
// after insertion; created_at is set by the database.
type ChatRepo struct{ DB *sql.DB }

func NewChatRepo(db *sql.DB) *ChatRepo { return &ChatRepo{DB: db} }

// ListAsc returns the full chat history ascending by creation time.
// Listing is deliberately global rather than scoped to a sender/receiver
// pair; the clients render a single shared thread.
func (r *ChatRepo) ListAsc(ctx context.Context) ([]model.Chat, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,sender_id,receiver_id,message,created_at FROM chats ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Chat{}
	for rows.Next() {
		var m model.Chat
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Create inserts a message and returns its ID. Validation of the message
// body happens in the handler; by the time this runs the text is known to
// be non-empty.
func (r *ChatRepo) Create(ctx context.Context, senderID, receiverID uint64, message string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO chats (sender_id, receiver_id, message) VALUES (?,?,?)",
		senderID, receiverID, message)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
