package model

import "time"

// Chat is a single message exchanged between two users. Rows are
// immutable after insertion and are listed ascending by creation
// time for display.
//
// Fields:
//  ID         – primary key identifier.
//  SenderID   – user who sent the message.
//  ReceiverID – user the message is addressed to.
//  Message    – message body (non-empty after trimming).
//  CreatedAt  – insertion timestamp (set by the database).
type Chat struct {
	ID         uint64    // chats.id
	SenderID   uint64    // chats.sender_id
	ReceiverID uint64    // chats.receiver_id
	Message    string    // chats.message
	CreatedAt  time.Time // chats.created_at
}
