package handler

import (
	"errors"
	"net/http"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
)

// GetData handles GET /data.
// It returns every booth as a JSON array in source order. The file is read
// on every request; a read failure yields 500 with a plain-text body.
func (s *Server) GetData(w http.ResponseWriter, r *http.Request) {
	booths, err := s.booths.List(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "list booths", "error", err)
		if errors.Is(err, domain.ErrSourceRead) {
			writeText(w, http.StatusInternalServerError, msgSourceRead)
			return
		}
		writeText(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if booths == nil {
		booths = []domain.Booth{}
	}
	s.writeJSON(w, r, http.StatusOK, booths)
}
