package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year)
	assert.Equal(t, time.March, d.Month)
	assert.Equal(t, 15, d.Day)
	assert.Equal(t, "2024-03-15", d.String())
}

func TestParseDateOnlyRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "2024-3-15", "15/03/2024", "2024-13-01", "not a date"} {
		_, err := ParseDateOnly(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDateOnlyRoundTripsAcrossZones(t *testing.T) {
	// A DATE column read back as midnight in a western zone must not
	// slip to the previous day.
	d, err := ParseDateOnly("2024-01-01")
	require.NoError(t, err)

	loc := time.FixedZone("UTC-9", -9*3600)
	var scanned DateOnly
	require.NoError(t, scanned.Scan(time.Date(2024, 1, 1, 0, 0, 0, 0, loc)))
	assert.Equal(t, d, scanned)
	assert.Equal(t, "2024-01-01", scanned.String())
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan("2024-06-30"))
	assert.Equal(t, "2024-06-30", d.String())

	require.NoError(t, d.Scan([]byte("2023-12-01")))
	assert.Equal(t, "2023-12-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	// Malformed values come back as the zero date, not an error.
	require.NoError(t, d.Scan("garbage"))
	assert.True(t, d.IsZero())
}

func TestDateOnlyValue(t *testing.T) {
	d, err := ParseDateOnly("2024-03-15")
	require.NoError(t, err)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", v)

	v, err = DateOnly{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateOnlyJSON(t *testing.T) {
	d, err := ParseDateOnly("2024-03-15")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(data))

	var back DateOnly
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	data, err = json.Marshal(DateOnly{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestStringListRoundTrip(t *testing.T) {
	l := StringList{"https://a.example/1.jpg", "https://a.example/2.jpg"}

	v, err := l.Value()
	require.NoError(t, err)

	var back StringList
	require.NoError(t, back.Scan(v))
	assert.Equal(t, l, back)
}

func TestStringListNilBecomesEmpty(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var back StringList
	require.NoError(t, back.Scan(nil))
	assert.NotNil(t, back)
	assert.Len(t, back, 0)
}

func TestJSONMapRoundTrip(t *testing.T) {
	m := JSONMap{"grade": "6A", "count": float64(3)}

	v, err := m.Value()
	require.NoError(t, err)

	var back JSONMap
	require.NoError(t, back.Scan(v))
	assert.Equal(t, m, back)
}

func TestJSONMapNil(t *testing.T) {
	var m JSONMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var back JSONMap
	require.NoError(t, back.Scan(nil))
	assert.Nil(t, back)
}
