package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2026-09-10",
			wantYear:  2026,
			wantMonth: time.September,
			wantDay:   10,
		},
		{
			name:      "january date",
			dateStr:   "2026-01-01",
			wantYear:  2026,
			wantMonth: time.January,
			wantDay:   1,
		},
		{
			name:      "leap year date",
			dateStr:   "2028-02-29",
			wantYear:  2028,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPtr(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		intVal := Ptr(42)
		require.NotNil(t, intVal)
		assert.Equal(t, 42, *intVal)
	})

	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("hello")
		require.NotNil(t, strVal)
		assert.Equal(t, "hello", *strVal)
	})

	t.Run("float64 value", func(t *testing.T) {
		floatVal := Ptr(4.6)
		require.NotNil(t, floatVal)
		assert.Equal(t, 4.6, *floatVal)
	})

	t.Run("negative int value", func(t *testing.T) {
		intVal := Ptr(-15)
		require.NotNil(t, intVal)
		assert.Equal(t, -15, *intVal)
	})
}

func TestLoadTestJSON(t *testing.T) {
	tests := []struct {
		name          string
		filename      string
		shouldContain string
	}{
		{
			name:          "flight search response",
			filename:      "flight_search_response.json",
			shouldContain: "best_flights",
		},
		{
			name:          "hotel search response",
			filename:      "hotel_search_response.json",
			shouldContain: "properties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := LoadTestJSON(t, tt.filename)
			assert.NotEmpty(t, data)
			assert.Contains(t, string(data), tt.shouldContain)
		})
	}
}

func TestLoadTestInto(t *testing.T) {
	var payload struct {
		BestFlights []struct {
			Price float64 `json:"price"`
		} `json:"best_flights"`
	}

	LoadTestInto(t, "flight_search_response.json", &payload)
	require.NotEmpty(t, payload.BestFlights)
	assert.Greater(t, payload.BestFlights[0].Price, float64(0))
}
