package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhani/tukang-backend/internal/repository"
)

func newChatHandler(t *testing.T) (*ChatHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewChatHandler(repository.NewChatRepo(db)), mock
}

func TestChatSendEmptyMessageWritesNothing(t *testing.T) {
	h, mock := newChatHandler(t)
	e := echo.New()

	// The third body uses JSON escapes so the decoded message is pure
	// whitespace.
	for _, msg := range []string{``, `   `, `\n\t`} {
		c, rec := jsonRequest(e, http.MethodPost, "/api/chats",
			`{"sender_id":1,"receiver_id":2,"message":"`+msg+`"}`)
		require.NoError(t, h.Send(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Pesan kosong", decodeBody(t, rec)["message"])
	}
	// No INSERT may have been issued for any of the rejected bodies.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatSendEchoesCreatedRow(t *testing.T) {
	h, mock := newChatHandler(t)
	e := echo.New()

	mock.ExpectExec("INSERT INTO chats (sender_id, receiver_id, message) VALUES (?,?,?)").
		WithArgs(1, 2, "halo pak, jadi datang?").
		WillReturnResult(sqlmock.NewResult(11, 1))

	before := time.Now().UTC()
	c, rec := jsonRequest(e, http.MethodPost, "/api/chats",
		`{"sender_id":1,"receiver_id":2,"message":"halo pak, jadi datang?"}`)
	require.NoError(t, h.Send(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 11, data["id"])
	assert.EqualValues(t, 1, data["sender_id"])
	assert.EqualValues(t, 2, data["receiver_id"])
	assert.Equal(t, "halo pak, jadi datang?", data["message"])

	// created_at is the server's approximation of the DB timestamp.
	ts, err := time.Parse(time.RFC3339Nano, data["created_at"].(string))
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Second)))
}

func TestChatListAscending(t *testing.T) {
	h, mock := newChatHandler(t)
	e := echo.New()

	t0 := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "message", "created_at"}).
		AddRow(1, 1, 2, "halo", t0).
		AddRow(2, 2, 1, "siap", t0.Add(time.Minute))
	mock.ExpectQuery("SELECT id,sender_id,receiver_id,message,created_at FROM chats ORDER BY created_at ASC").
		WillReturnRows(rows)

	c, rec := jsonRequest(e, http.MethodGet, "/api/chats", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "halo", data[0].(map[string]any)["message"])
	assert.Equal(t, "siap", data[1].(map[string]any)["message"])
}
