package core_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notebook/pkg/core"
)

func TestParseTimestamp(t *testing.T) {
	t.Run("Accepts RFC3339", func(t *testing.T) {
		ts, err := core.ParseTimestamp("2024-05-01T10:20:30.5+02:00")
		require.NoError(t, err)
		assert.True(t, ts.Equal(time.Date(2024, 5, 1, 8, 20, 30, 500_000_000, time.UTC)))
	})

	t.Run("Accepts Zone-less ISO-8601 As Local Time", func(t *testing.T) {
		ts, err := core.ParseTimestamp("2024-05-01T10:20:30.123456")
		require.NoError(t, err)
		assert.True(t, ts.Equal(time.Date(2024, 5, 1, 10, 20, 30, 123_456_000, time.Local)))
	})

	t.Run("Rejects Garbage", func(t *testing.T) {
		_, err := core.ParseTimestamp("yesterday")
		assert.Error(t, err)
	})
}

func TestNote_JSON(t *testing.T) {
	created := core.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	n := core.Note{ID: 3, Title: "Groceries", Body: "milk", CreatedAt: created, UpdatedAt: created}

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3,
		"title": "Groceries",
		"body": "milk",
		"created_at": "2024-01-02T03:04:05Z",
		"updated_at": "2024-01-02T03:04:05Z"
	}`, string(data))

	t.Run("Null Timestamps Stay Null", func(t *testing.T) {
		var n core.Note
		require.NoError(t, json.Unmarshal([]byte(`{"id":2,"title":"t","body":"b","created_at":"2024-01-02T03:04:05Z","updated_at":null}`), &n))
		assert.True(t, n.UpdatedAt.IsZero())
		assert.Equal(t, 2024, n.CreatedAt.Year())

		data, err := json.Marshal(n)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"updated_at":null`)
	})

	t.Run("Rejects Non-String Timestamps", func(t *testing.T) {
		var bad core.Note
		err := json.Unmarshal([]byte(`{"id":1,"created_at":12}`), &bad)
		assert.Error(t, err)
	})
}

func TestParseID(t *testing.T) {
	id, err := core.ParseID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, in := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := core.ParseID(in)
		assert.ErrorIs(t, err, core.ErrInvalidID, "input %q", in)
	}
}
