package handler

import (
	"errors"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
)

// GetFacebookPhotos handles GET /get-facebook-photos?access_token=&page_id=.
// The Graph API response is relayed verbatim on success.
func (s *Server) GetFacebookPhotos(w http.ResponseWriter, r *http.Request) {
	var accessToken, pageID string
	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "access_token", query, &accessToken); err != nil {
		writeText(w, http.StatusBadRequest, msgMissingParams)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "page_id", query, &pageID); err != nil {
		writeText(w, http.StatusBadRequest, msgMissingParams)
		return
	}
	if accessToken == "" || pageID == "" {
		writeText(w, http.StatusBadRequest, msgMissingParams)
		return
	}

	body, err := s.photos.Photos(r.Context(), accessToken, pageID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeText(w, http.StatusBadRequest, msgMissingParams)
			return
		}
		s.log.ErrorContext(r.Context(), "fetch facebook photos", "page_id", pageID, "error", err)
		writeText(w, http.StatusInternalServerError, msgPhotos)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.log.ErrorContext(r.Context(), "write photos response", "error", err)
	}
}
