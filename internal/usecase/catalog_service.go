package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/cricket-pool/internal/domain/contest"
)

// CatalogService manages the match catalog: fixtures, their teams, and the
// announced player pools.
type CatalogService struct {
	contestRepo contest.Repository
}

func NewCatalogService(contestRepo contest.Repository) *CatalogService {
	return &CatalogService{contestRepo: contestRepo}
}

func (s *CatalogService) CreateMatch(ctx context.Context, name string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateMatch")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: match name is required", ErrInvalidInput)
	}

	if err := s.contestRepo.CreateMatch(ctx, name); err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

func (s *CatalogService) AddTeam(ctx context.Context, matchName, teamName string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.AddTeam")
	defer span.End()

	matchName = strings.TrimSpace(matchName)
	teamName = strings.TrimSpace(teamName)
	if matchName == "" || teamName == "" {
		return fmt.Errorf("%w: match and team names are required", ErrInvalidInput)
	}

	if err := s.contestRepo.AddTeam(ctx, matchName, teamName); err != nil {
		return fmt.Errorf("add team: %w", err)
	}
	return nil
}

// AddPlayers cleans the incoming names (pasted announcement lists carry
// stray commas and parens) and appends what survives. Returns the names
// actually added.
func (s *CatalogService) AddPlayers(ctx context.Context, matchName, teamName string, names []string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.AddPlayers")
	defer span.End()

	matchName = strings.TrimSpace(matchName)
	teamName = strings.TrimSpace(teamName)
	if matchName == "" || teamName == "" {
		return nil, fmt.Errorf("%w: match and team names are required", ErrInvalidInput)
	}

	cleaned := contest.SplitPlayerList(strings.Join(names, ","))
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: no player names after cleanup", ErrInvalidInput)
	}

	if err := s.contestRepo.AppendPlayers(ctx, matchName, teamName, cleaned); err != nil {
		return nil, fmt.Errorf("add players: %w", err)
	}
	return cleaned, nil
}

func (s *CatalogService) ListMatches(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListMatches")
	defer span.End()

	matches, err := s.contestRepo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *CatalogService) ListTeams(ctx context.Context, matchName string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeams")
	defer span.End()

	match, err := s.getMatch(ctx, matchName)
	if err != nil {
		return nil, err
	}

	teams := make([]string, 0, len(match.Teams))
	for name := range match.Teams {
		teams = append(teams, name)
	}
	sort.Strings(teams)
	return teams, nil
}

func (s *CatalogService) ListTeamPlayers(ctx context.Context, matchName, teamName string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeamPlayers")
	defer span.End()

	match, err := s.getMatch(ctx, matchName)
	if err != nil {
		return nil, err
	}

	teamName = strings.TrimSpace(teamName)
	players, exists := match.Teams[teamName]
	if !exists {
		return nil, fmt.Errorf("%w: %s in match %s", contest.ErrTeamNotFound, teamName, match.Name)
	}
	return players, nil
}

func (s *CatalogService) ListMatchPlayers(ctx context.Context, matchName string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListMatchPlayers")
	defer span.End()

	match, err := s.getMatch(ctx, matchName)
	if err != nil {
		return nil, err
	}
	return match.Players, nil
}

func (s *CatalogService) getMatch(ctx context.Context, matchName string) (contest.Match, error) {
	matchName = strings.TrimSpace(matchName)
	if matchName == "" {
		return contest.Match{}, fmt.Errorf("%w: match name is required", ErrInvalidInput)
	}

	match, exists, err := s.contestRepo.GetMatch(ctx, matchName)
	if err != nil {
		return contest.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return contest.Match{}, fmt.Errorf("%w: %s", contest.ErrMatchNotFound, matchName)
	}
	return match, nil
}
