package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/leagueops/league-management/internal"
)

type Repository interface {
	Detail(ctx context.Context, id int64) (*Player, error)
	ListAll(ctx context.Context) ([]*ListEntry, error)
	ListByTeam(ctx context.Context, teamID int64) ([]*Ref, error)
	ListWithoutTeam(ctx context.Context) ([]*Ref, error)
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

func (s *Service) Detail(ctx context.Context, id int64) (*Player, error) {
	p, err := s.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrPlayerNotFound) {
			return nil, internal.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("player detail %d: %w", id, err)
	}
	return p, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*ListEntry, error) {
	players, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *Service) ListByTeam(ctx context.Context, teamID int64) ([]*Ref, error) {
	players, err := s.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players for team %d: %w", teamID, err)
	}
	return players, nil
}

func (s *Service) ListWithoutTeam(ctx context.Context) ([]*Ref, error) {
	players, err := s.repo.ListWithoutTeam(ctx)
	if err != nil {
		return nil, fmt.Errorf("list free agents: %w", err)
	}
	return players, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (int64, error) {
	if input.Name == "" {
		return 0, internal.NewValidationError("player name is required", internal.ErrCodeInvalidInput)
	}
	id, err := s.repo.Create(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("create player: %w", err)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) error {
	if input.Name == "" {
		return internal.NewValidationError("player name is required", internal.ErrCodeInvalidInput)
	}
	if err := s.repo.Update(ctx, input); err != nil {
		if errors.Is(err, internal.ErrPlayerNotFound) {
			return internal.ErrPlayerNotFound
		}
		return fmt.Errorf("update player %d: %w", input.ID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, internal.ErrPlayerNotFound) {
			return internal.ErrPlayerNotFound
		}
		return fmt.Errorf("delete player %d: %w", id, err)
	}
	return nil
}
