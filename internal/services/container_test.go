package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sithum-sy/hireme-client/internal/api"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContainer(t *testing.T, handler http.HandlerFunc) *Container {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := api.NewClient(server.Client(), api.WithBaseURL(server.URL))
	return NewContainer(client, zap.NewNop())
}

func TestContainer_ListAndDelete(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()

	c := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			fmt.Fprintf(w, `{"success":true,"data":[
				{"id":"%s","title":"Pipe repair","is_active":true},
				{"id":"%s","title":"Drain cleaning","is_active":false}
			]}`, id1, id2)
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/api/provider/services/"+id1.String(), r.URL.Path)
			w.Write([]byte(`{"success":true,"message":"deleted"}`))
		}
	})

	require.True(t, c.List(context.Background()).Success)
	assert.Len(t, c.Snapshot().Services, 2)

	require.True(t, c.Delete(context.Background(), id1).Success)

	remaining := c.Snapshot().Services
	require.Len(t, remaining, 1)
	assert.Equal(t, id2, remaining[0].ID)
}

func TestContainer_Create_JSONWhenNoImages(t *testing.T) {
	id := uuid.New()
	c := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		fmt.Fprintf(w, `{"success":true,"data":{"id":"%s","title":"Pipe repair"}}`, id)
	})

	res := c.Create(context.Background(), map[string]string{"title": "Pipe repair"}, nil)
	require.True(t, res.Success)
	require.Len(t, c.Snapshot().Services, 1)
	assert.Equal(t, id, c.Snapshot().Services[0].ID)
}

func TestContainer_Update_WithImagesSpoofsPut(t *testing.T) {
	id := uuid.New()
	c := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprintf(w, `{"success":true,"data":[{"id":"%s","title":"Old title"}]}`, id)
		case http.MethodPost:
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "PUT", r.FormValue("_method"))
			assert.Equal(t, "New title", r.FormValue("title"))
			fmt.Fprintf(w, `{"success":true,"data":{"id":"%s","title":"New title"}}`, id)
		}
	})

	require.True(t, c.List(context.Background()).Success)

	res := c.Update(context.Background(), id,
		map[string]string{"title": "New title"},
		[]api.FilePart{{Field: "images[]", FileName: "photo.jpg", Content: strings.NewReader("bytes")}})
	require.True(t, res.Success)
	assert.Equal(t, "New title", c.Snapshot().Services[0].Title)
}

func TestContainer_Toggle(t *testing.T) {
	id := uuid.New()
	c := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprintf(w, `{"success":true,"data":[{"id":"%s","title":"Pipe repair","is_active":true}]}`, id)
		case http.MethodPatch:
			assert.Equal(t, "/api/provider/services/"+id.String()+"/toggle", r.URL.Path)
			fmt.Fprintf(w, `{"success":true,"data":{"id":"%s","title":"Pipe repair","is_active":false}}`, id)
		}
	})

	require.True(t, c.List(context.Background()).Success)
	require.True(t, c.Toggle(context.Background(), id, false).Success)
	assert.False(t, c.Snapshot().Services[0].IsActive)
}

func TestContainer_CreateFailureLeavesCollectionUntouched(t *testing.T) {
	c := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"Validation failed","errors":{"title":["Title is required"]}}`))
	})

	res := c.Create(context.Background(), map[string]string{}, nil)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"Title is required"}, res.Errors["title"])
	assert.Empty(t, c.Snapshot().Services)
}
