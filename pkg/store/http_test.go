package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/apperrors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestClientNormalizesOnDecode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /edges", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"e1","idea_id":"i1","confidence":"high"},
			{"id":"e2","idea_id":"i2","confidence":"certain"},
			{"id":"e3","idea_id":"i3","status":"  draft  "}
		]`))
	})

	edges, err := newTestClient(t, mux).Edges(context.Background())
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, "high", string(edges[0].Confidence))
	// Unknown confidence collapses to absent at the boundary.
	assert.Equal(t, "", string(edges[1].Confidence))
	assert.Equal(t, "draft", edges[2].Status)
}

func TestClientRequiredLookupNotFound(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	_, err := c.Idea(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = c.Project(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClientOptionalScoreAbsent(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	score, err := c.IdeaScore(context.Background(), "i1")
	assert.NoError(t, err)
	assert.Nil(t, score)
}

func TestClientUpstreamFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Users(context.Background())
	require.Error(t, err)

	var upstream *apperrors.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, ColUsers, upstream.Collection)
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := NewClient("not-a-url", time.Second, zap.NewNop())
	assert.Error(t, err)
}
