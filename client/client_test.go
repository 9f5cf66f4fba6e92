package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoUnmarshalsData(t *testing.T) {
	var gotQuery string
	var gotVars map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotQuery = req.Query
		gotVars = req.Variables

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"brands":[{"id":"b-1","name":"Climb Lab"}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	var out struct {
		Brands []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"brands"`
	}
	err := c.Do(context.Background(), GetBrands, map[string]interface{}{"x": "y"}, &out)
	require.NoError(t, err)
	require.Len(t, out.Brands, 1)
	assert.Equal(t, "Climb Lab", out.Brands[0].Name)
	assert.Equal(t, GetBrands, gotQuery)
	assert.Equal(t, "y", gotVars["x"])
}

func TestDoReturnsFirstGraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": null,
			"errors": [
				{"message": "brand 'Climb Lab' already exists", "extensions": {"code": "CONFLICT"}},
				{"message": "second error"}
			]
		}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Do(context.Background(), CreateBrand, nil, nil)
	require.Error(t, err)

	var gqlErr GraphQLError
	require.True(t, errors.As(err, &gqlErr))
	assert.Equal(t, "CONFLICT", gqlErr.Code())
	assert.Equal(t, "CONFLICT: brand 'Climb Lab' already exists", err.Error())
}

func TestDoErrorWithoutCode(t *testing.T) {
	gqlErr := GraphQLError{Message: "boom"}
	assert.Equal(t, "boom", gqlErr.Error())
	assert.Equal(t, "", gqlErr.Code())
}

func TestDoNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).Do(context.Background(), GetBrands, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestDoNilOutDiscardsData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"deleteBrand":true}}`))
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).Do(context.Background(), DeleteBrand, map[string]interface{}{"id": "b-1"}, nil))
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c := New("http://localhost:8080/api/graphql", WithHTTPClient(hc))
	assert.Same(t, hc, c.http)
}
