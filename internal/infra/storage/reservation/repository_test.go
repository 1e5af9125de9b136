package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapQuery(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	query, args, err := overlapQuery(7, start, end, false).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM reservations")
	assert.Contains(t, query, "chalet_id = $1")
	assert.Contains(t, query, "status IN ($2,$3)")
	assert.Contains(t, query, "start_date < $4")
	assert.Contains(t, query, "end_date > $5")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{int64(7), "pending", "confirmed", end, start}, args)
}

func TestOverlapQuery_LocksInTransaction(t *testing.T) {
	query, _, err := overlapQuery(1, time.Now(), time.Now().AddDate(0, 0, 1), true).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FOR UPDATE")
}

func TestActiveStatuses(t *testing.T) {
	assert.Equal(t, []string{"pending", "confirmed"}, activeStatuses())
}
