package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalArgsTreatNullAsAbsent(t *testing.T) {
	m := map[string]interface{}{
		"title":      nil,
		"isVerified": nil,
		"limit":      nil,
		"latitude":   nil,
		"imageUrls":  nil,
		"parsedData": nil,
	}

	assert.Nil(t, optStringArg(m, "title"))
	assert.Nil(t, optBoolArg(m, "isVerified"))
	assert.Nil(t, optIntArg(m, "limit"))
	assert.Nil(t, optFloatArg(m, "latitude"))
	assert.Nil(t, optStringSliceArg(m, "imageUrls"))
	assert.Nil(t, optMapArg(m, "parsedData"))

	empty := map[string]interface{}{}
	assert.Nil(t, optStringArg(empty, "title"))
	assert.Nil(t, optStringSliceArg(empty, "imageUrls"))
}

func TestOptStringSliceArgEmptyListClears(t *testing.T) {
	m := map[string]interface{}{"imageUrls": []interface{}{}}

	out := optStringSliceArg(m, "imageUrls")
	require.NotNil(t, out, "an explicit empty list is a real value")
	assert.Len(t, *out, 0)
}

func TestOptStringSliceArgValues(t *testing.T) {
	m := map[string]interface{}{
		"imageUrls": []interface{}{"https://cdn.example/1.jpg", "https://cdn.example/2.jpg"},
	}

	out := optStringSliceArg(m, "imageUrls")
	require.NotNil(t, out)
	assert.Equal(t, []string{"https://cdn.example/1.jpg", "https://cdn.example/2.jpg"}, *out)
}

func TestNumericArgCoercion(t *testing.T) {
	m := map[string]interface{}{
		"limit":    float64(25),
		"latitude": 37,
	}

	limit := optIntArg(m, "limit")
	require.NotNil(t, limit)
	assert.Equal(t, 25, *limit)

	lat := optFloatArg(m, "latitude")
	require.NotNil(t, lat)
	assert.Equal(t, 37.0, *lat)
}
