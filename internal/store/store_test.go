package store

import (
	"testing"
	"time"

	"dispatch-report/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSheets = []report.SheetInfo{
	{Name: "Prices", Columns: 2, Rows: 4},
	{Name: "README", Columns: 1, Rows: 3},
}

func TestPutGet(t *testing.T) {
	s := New(time.Minute, 0)

	e := s.Put("report.xlsx", testSheets, []byte("workbook"))
	require.NotEmpty(t, e.ID)

	got, ok := s.Get(e.ID)
	require.True(t, ok)
	assert.Equal(t, "report.xlsx", got.Filename)
	assert.Equal(t, []byte("workbook"), got.Data)
	assert.Equal(t, testSheets, got.Sheets)
}

func TestGetUnknown(t *testing.T) {
	s := New(time.Minute, 0)

	_, ok := s.Get("no-such-id")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := New(10*time.Minute, 0)
	s.now = func() time.Time { return now }

	e := s.Put("report.xlsx", testSheets, []byte("workbook"))

	_, ok := s.Get(e.ID)
	require.True(t, ok)

	now = now.Add(11 * time.Minute)
	_, ok = s.Get(e.ID)
	assert.False(t, ok)

	// The next Put purges the expired entry.
	s.Put("other.xlsx", testSheets, []byte("x"))
	assert.Equal(t, 1, s.Len())
}

func TestEvictOldest(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := New(time.Hour, 2)
	s.now = func() time.Time { return now }

	first := s.Put("a.xlsx", testSheets, []byte("a"))
	now = now.Add(time.Minute)
	second := s.Put("b.xlsx", testSheets, []byte("b"))
	now = now.Add(time.Minute)
	third := s.Put("c.xlsx", testSheets, []byte("c"))

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(first.ID)
	assert.False(t, ok)
	_, ok = s.Get(second.ID)
	assert.True(t, ok)
	_, ok = s.Get(third.ID)
	assert.True(t, ok)
}
