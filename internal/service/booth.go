// Package service contains the business logic for the circle search API.
// Services orchestrate repo calls and wrap their errors; no file access
// lives here.
package service

import (
	"context"
	"fmt"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/repo"
)

// BoothService serves the booth directory.
type BoothService struct {
	repo repo.BoothRepo
}

// NewBoothService constructs a BoothService backed by the provided BoothRepo.
func NewBoothService(r repo.BoothRepo) *BoothService {
	return &BoothService{repo: r}
}

// List returns the complete booth directory in source order.
// The result is never nil on success.
func (s *BoothService) List(ctx context.Context) ([]domain.Booth, error) {
	booths, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BoothService.List: %w", err)
	}
	if booths == nil {
		booths = []domain.Booth{}
	}
	return booths, nil
}
