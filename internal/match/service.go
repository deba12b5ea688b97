package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/leagueops/league-management/internal"
)

type Repository interface {
	List(ctx context.Context) ([]*ListEntry, error)
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

func (s *Service) List(ctx context.Context) ([]*ListEntry, error) {
	matches, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	d, err := s.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrMatchNotFound) {
			return nil, internal.ErrMatchNotFound
		}
		return nil, fmt.Errorf("match detail %d: %w", id, err)
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (int64, error) {
	if err := validateSides(input.Team1ID, input.Team2ID); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("create match: %w", err)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) error {
	if err := validateSides(input.Team1ID, input.Team2ID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, input); err != nil {
		if errors.Is(err, internal.ErrMatchNotFound) {
			return internal.ErrMatchNotFound
		}
		return fmt.Errorf("update match %d: %w", input.ID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, internal.ErrMatchNotFound) {
			return internal.ErrMatchNotFound
		}
		return fmt.Errorf("delete match %d: %w", id, err)
	}
	return nil
}

func validateSides(team1ID, team2ID int64) error {
	if team1ID == 0 || team2ID == 0 {
		return internal.NewValidationError("both teams are required", internal.ErrCodeInvalidInput)
	}
	if team1ID == team2ID {
		return internal.NewValidationError("a team cannot play against itself", internal.ErrCodeInvalidInput)
	}
	return nil
}
