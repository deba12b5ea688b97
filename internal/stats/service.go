package stats

import (
	"context"
	"fmt"
)

type Repository interface {
	TeamSums(ctx context.Context) ([]*TeamRow, error)
	PlayerSums(ctx context.Context) ([]*PlayerRow, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) TeamSums(ctx context.Context) ([]*TeamRow, error) {
	rows, err := s.repo.TeamSums(ctx)
	if err != nil {
		return nil, fmt.Errorf("team stats sums: %w", err)
	}
	return rows, nil
}

func (s *Service) TeamAverages(ctx context.Context) ([]*TeamAverages, error) {
	sums, err := s.repo.TeamSums(ctx)
	if err != nil {
		return nil, fmt.Errorf("team stats averages: %w", err)
	}

	averages := make([]*TeamAverages, len(sums))
	for i, row := range sums {
		averages[i] = &TeamAverages{
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			TeamLogo:      row.TeamLogo,
			Scored:        perMatch(row.Scored, row.AmountPlayed),
			Conceded:      perMatch(row.Conceded, row.AmountPlayed),
			Interceptions: perMatch(row.Interceptions, row.AmountPlayed),
			Goals:         perMatch(row.Goals, row.AmountPlayed),
			Assists:       perMatch(row.Assists, row.AmountPlayed),
			Passes:        perMatch(row.Passes, row.AmountPlayed),
			Shots:         perMatch(row.Shots, row.AmountPlayed),
			Tackles:       perMatch(row.Tackles, row.AmountPlayed),
			Saves:         perMatch(row.Saves, row.AmountPlayed),
			Catches:       perMatch(row.Catches, row.AmountPlayed),
			AmountPlayed:  row.AmountPlayed,
		}
	}
	return averages, nil
}

func (s *Service) PlayerSums(ctx context.Context) ([]*PlayerRow, error) {
	rows, err := s.repo.PlayerSums(ctx)
	if err != nil {
		return nil, fmt.Errorf("player stats sums: %w", err)
	}
	return rows, nil
}

func (s *Service) PlayerAverages(ctx context.Context) ([]*PlayerAverages, error) {
	sums, err := s.repo.PlayerSums(ctx)
	if err != nil {
		return nil, fmt.Errorf("player stats averages: %w", err)
	}

	averages := make([]*PlayerAverages, len(sums))
	for i, row := range sums {
		averages[i] = &PlayerAverages{
			PlayerID:      row.PlayerID,
			PlayerName:    row.PlayerName,
			Score:         perMatch(row.Score, row.AmountPlayed),
			Goals:         perMatch(row.Goals, row.AmountPlayed),
			Assists:       perMatch(row.Assists, row.AmountPlayed),
			Catches:       perMatch(row.Catches, row.AmountPlayed),
			Interceptions: perMatch(row.Interceptions, row.AmountPlayed),
			Tackles:       perMatch(row.Tackles, row.AmountPlayed),
			Passes:        perMatch(row.Passes, row.AmountPlayed),
			Saves:         perMatch(row.Saves, row.AmountPlayed),
			Shots:         perMatch(row.Shots, row.AmountPlayed),
			AmountPlayed:  row.AmountPlayed,
		}
	}
	return averages, nil
}

func perMatch(total, played int) float64 {
	if played == 0 {
		return 0
	}
	return float64(total) / float64(played)
}
