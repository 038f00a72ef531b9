package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/handler"
)

// ---- mock PhotoFetcher -----------------------------------------------------

type mockPhotoFetcher struct {
	photos func(ctx context.Context, accessToken, pageID string) (json.RawMessage, error)
}

func (m *mockPhotoFetcher) Photos(ctx context.Context, accessToken, pageID string) (json.RawMessage, error) {
	return m.photos(ctx, accessToken, pageID)
}

// compile-time check: mockPhotoFetcher must satisfy handler.PhotoFetcher.
var _ handler.PhotoFetcher = (*mockPhotoFetcher)(nil)

func newPhotosHTTPHandler(f handler.PhotoFetcher) http.Handler {
	return handler.NewServer(nil, f, nil).Handler()
}

// ---- GET /get-facebook-photos -----------------------------------------------

func TestGetFacebookPhotos_200_RelaysBody(t *testing.T) {
	var gotToken, gotPage string
	f := &mockPhotoFetcher{
		photos: func(_ context.Context, accessToken, pageID string) (json.RawMessage, error) {
			gotToken, gotPage = accessToken, pageID
			return json.RawMessage(`{"data":[{"id":"42"}],"paging":{}}`), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/get-facebook-photos?access_token=abc&page_id=999", nil)
	rec := httptest.NewRecorder()
	newPhotosHTTPHandler(f).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", gotToken)
	assert.Equal(t, "999", gotPage)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"data":[{"id":"42"}],"paging":{}}`, rec.Body.String())
}

func TestGetFacebookPhotos_400_MissingParams(t *testing.T) {
	called := false
	f := &mockPhotoFetcher{
		photos: func(_ context.Context, _, _ string) (json.RawMessage, error) {
			called = true
			return nil, nil
		},
	}

	for _, target := range []string{
		"/get-facebook-photos",
		"/get-facebook-photos?access_token=abc",
		"/get-facebook-photos?page_id=999",
		"/get-facebook-photos?access_token=&page_id=999",
	} {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			rec := httptest.NewRecorder()
			newPhotosHTTPHandler(f).ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Access token or page ID is missing", strings.TrimSpace(rec.Body.String()))
		})
	}
	assert.False(t, called, "fetcher must not be called without both params")
}

func TestGetFacebookPhotos_500_UpstreamError(t *testing.T) {
	f := &mockPhotoFetcher{
		photos: func(_ context.Context, _, _ string) (json.RawMessage, error) {
			return nil, fmt.Errorf("graph.Client.Photos: %w: status 401", domain.ErrUpstream)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/get-facebook-photos?access_token=abc&page_id=999", nil)
	rec := httptest.NewRecorder()
	newPhotosHTTPHandler(f).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error fetching Facebook photos", strings.TrimSpace(rec.Body.String()))
}
