package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/google/uuid"
)

type rosterService struct {
	workers  repository.WorkerRepo
	projects repository.ProjectRepo
	clock    Clock
}

func NewRosterService(workers repository.WorkerRepo, projects repository.ProjectRepo, clock Clock) RosterService {
	return &rosterService{workers: workers, projects: projects, clock: clock}
}

func (s *rosterService) AddWorker(ctx context.Context, req WorkerRequest) (*domain.Worker, error) {
	if req.FirstName == "" {
		return nil, fmt.Errorf("add worker: first name is required")
	}

	now := s.clock.Now().UTC()
	w := &domain.Worker{
		ID:         uuid.New().String(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Position:   req.Position,
		Department: req.Department,
		Status:     domain.WorkerActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.workers.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *rosterService) Workers(ctx context.Context) ([]*domain.Worker, error) {
	return s.workers.List(ctx)
}

func (s *rosterService) AddProject(ctx context.Context, name string) (*domain.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("add project: name is required")
	}

	now := s.clock.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *rosterService) Projects(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}
