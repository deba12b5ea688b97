package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/leagueops/league-management/internal"
)

type Repository interface {
	List(ctx context.Context) ([]*Summary, error)
	Detail(ctx context.Context, id int64) (*Detail, error)
	Create(ctx context.Context, input CreateInput) (int64, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Summary, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	d, err := s.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrTeamNotFound) {
			return nil, internal.ErrTeamNotFound
		}
		return nil, fmt.Errorf("team detail %d: %w", id, err)
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (int64, error) {
	if input.Name == "" {
		return 0, internal.NewValidationError("team name is required", internal.ErrCodeInvalidInput)
	}
	id, err := s.repo.Create(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("create team: %w", err)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) error {
	if input.Name == "" {
		return internal.NewValidationError("team name is required", internal.ErrCodeInvalidInput)
	}
	if err := s.repo.Update(ctx, input); err != nil {
		if errors.Is(err, internal.ErrTeamNotFound) {
			return internal.ErrTeamNotFound
		}
		return fmt.Errorf("update team %d: %w", input.ID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, internal.ErrTeamNotFound) {
			return internal.ErrTeamNotFound
		}
		return fmt.Errorf("delete team %d: %w", id, err)
	}
	return nil
}
