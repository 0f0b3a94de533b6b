package queue

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/citymed/frontdesk-api/internal/model"
	"github.com/citymed/frontdesk-api/internal/repository"
)

// Token and position bounds for walk-in registration. Position and eta are
// synthesized per request and carry no relationship to queue contents.
const (
	tokenMin = 100
	tokenMax = 999

	positionMax        = 10
	minutesPerPosition = 5
)

type Service struct {
	repo repository.QueueRepository
}

func NewService(repo repository.QueueRepository) *Service {
	return &Service{repo: repo}
}

// Register persists the walk-in and issues a ticket. No field is required.
// Tokens are drawn independently per registration, so collisions between
// entries are possible and accepted.
func (s *Service) Register(ctx context.Context, req *model.RegisterQueueRequest) (*model.QueueTicket, error) {
	token := tokenMin + rand.Intn(tokenMax-tokenMin+1)

	if _, err := s.repo.Create(ctx, &model.QueueInsert{
		Name:       req.Name,
		Contact:    req.Contact,
		Department: req.Department,
		DoctorID:   int(req.DoctorID),
		Token:      token,
	}); err != nil {
		return nil, fmt.Errorf("failed to register queue entry: %w", err)
	}

	position := 1 + rand.Intn(positionMax)
	return &model.QueueTicket{
		Token:    token,
		Position: position,
		ETA:      position * minutesPerPosition,
	}, nil
}
