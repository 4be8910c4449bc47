package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMessageAppendsLogLine(t *testing.T) {
	t.Chdir(t.TempDir())

	ev := OrderCreatedEvent{
		OrderID:      7,
		NamaUser:     "Budi",
		KategoriJasa: "Ledeng",
		Alamat:       "Jl. Melati 1",
		FotoMasalah:  "foto-1-2.jpg",
		CreatedAt:    "2025-11-01T09:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, handleMessage(body))
	require.NoError(t, handleMessage(body)) // appends, does not truncate

	data, err := os.ReadFile(filepath.Join("logs", "orders.log"))
	require.NoError(t, err)
	lines := string(data)
	assert.Contains(t, lines, "order_id=7")
	assert.Contains(t, lines, `pelanggan="Budi"`)
	assert.Contains(t, lines, "foto=foto-1-2.jpg")
	assert.Equal(t, 2, countLines(lines))
}

func TestHandleMessageRejectsBadJSON(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Error(t, handleMessage([]byte("bukan json")))
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
