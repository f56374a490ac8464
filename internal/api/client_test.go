package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sithum-sy/hireme-client/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get_DecodesEnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/profile", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"name":"Sithum"}}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL), WithToken("test-token"))

	var out struct {
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "/profile", &out)
	require.NoError(t, err)
	assert.Equal(t, "Sithum", out.Name)
}

func TestClient_ErrorEnvelopeCarriesFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"Validation failed","errors":{"email":["Email is taken"]}}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))

	err := client.Post(context.Background(), "/profile", map[string]string{"email": "x"}, nil)
	require.Error(t, err)

	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Validation failed", apiErr.Message)
	assert.Equal(t, []string{"Email is taken"}, apiErr.FieldErrors["email"])
}

func TestClient_SuccessFalseWithOKStatusStillFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"message":"Nope"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))

	err := client.Get(context.Background(), "/profile", nil)
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Nope", apiErr.Message)
}

func TestClient_PostMultipart_SpoofsMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "PUT", r.FormValue("_method"))
		assert.Equal(t, "Acme", r.FormValue("business_name"))

		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "avatar.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))

	err := client.PostMultipart(context.Background(), "/profile/avatar",
		map[string]string{"business_name": "Acme"},
		[]FilePart{{Field: "avatar", FileName: "avatar.jpg", Content: strings.NewReader("fake-bytes")}},
		"PUT", nil)
	require.NoError(t, err)
}

func TestClient_NetworkFailureIsNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := NewClient(&http.Client{}, WithBaseURL(server.URL))

	err := client.Get(context.Background(), "/profile", nil)
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "NETWORK_ERROR", apiErr.Code)
}

func TestClient_PathsGetAPIPrefix(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))

	require.NoError(t, client.Get(context.Background(), "provider/services", nil))
	assert.Equal(t, "/api/provider/services", seen)

	require.NoError(t, client.Get(context.Background(), "/api/provider/services", nil))
	assert.Equal(t, "/api/provider/services", seen)
}

func TestClient_UnreadableSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))

	err := client.Get(context.Background(), "/profile", nil)
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "BAD_RESPONSE", apiErr.Code)
}
