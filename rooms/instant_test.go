package rooms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDate(t *testing.T) {
	current := time.Date(2026, time.October, 14, 9, 45, 12, 0, time.UTC)
	date := time.Date(2027, time.January, 2, 23, 0, 0, 0, time.UTC)

	got := ApplyDate(current, &date)
	assert.Equal(t, time.Date(2027, time.January, 2, 9, 45, 12, 0, time.UTC), got)
}

func TestApplyTime(t *testing.T) {
	current := time.Date(2026, time.October, 14, 9, 45, 12, 0, time.UTC)
	clock := time.Date(0, time.January, 1, 16, 5, 0, 0, time.UTC)

	got := ApplyTime(current, &clock)
	assert.Equal(t, time.Date(2026, time.October, 14, 16, 5, 0, 0, time.UTC), got)
}

func TestApplyNilKeepsCurrent(t *testing.T) {
	current := time.Date(2026, time.October, 14, 9, 45, 12, 0, time.UTC)
	assert.Equal(t, current, ApplyDate(current, nil))
	assert.Equal(t, current, ApplyTime(current, nil))
}

func TestApplyOrderIndependent(t *testing.T) {
	current := time.Date(2026, time.October, 14, 9, 45, 12, 0, time.UTC)
	date := time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)
	clock := time.Date(0, time.January, 1, 14, 30, 0, 0, time.UTC)

	dateFirst := ApplyTime(ApplyDate(current, &date), &clock)
	timeFirst := ApplyDate(ApplyTime(current, &clock), &date)

	assert.Equal(t, dateFirst, timeFirst)
	assert.Equal(t, 2026, dateFirst.Year())
	assert.Equal(t, time.December, dateFirst.Month())
	assert.Equal(t, 25, dateFirst.Day())
	assert.Equal(t, 14, dateFirst.Hour())
	assert.Equal(t, 30, dateFirst.Minute())
}
