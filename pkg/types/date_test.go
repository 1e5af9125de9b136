package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateFromString(t *testing.T) {
	d, err := NewDateFromString("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d.String())

	d, err = NewDateFromString("2024-06-01T22:30:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d.String())

	_, err = NewDateFromString("01.06.2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewDateFromString("  ")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Start Date  `json:"start"`
		End   *Date `json:"end"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-07-01","end":null}`), &p))
	assert.Equal(t, "2024-07-01", p.Start.String())

	out, err := json.Marshal(payload{Start: MustDate("2024-07-04")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-07-04","end":null}`, string(out))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 6, 5, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-05", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-07")))
	assert.Equal(t, "2024-06-07", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestAddDays(t *testing.T) {
	d := MustDate("2024-02-28")
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.True(t, d.Before(d.AddDays(1)))
}
