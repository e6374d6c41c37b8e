package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/cricket-pool/internal/domain/roster"
	"github.com/riskibarqy/cricket-pool/internal/domain/scoring"
	"github.com/riskibarqy/cricket-pool/internal/platform/cache"
)

// Rankings fan-out kicks in only when there are enough users to amortize
// the pool setup.
const rankingsParallelThreshold = 16

type stateVersioner interface {
	Version() uint64
}

// ScoringService publishes per-player points and derives weighted user
// scores and rankings from them.
type ScoringService struct {
	rosterRepo  roster.Repository
	scoringRepo scoring.Repository
	rankings    *cache.Store
	versioner   stateVersioner
	workers     int
}

// NewScoringService wires the scoring read models. rankingsCache may be nil
// to disable caching; versioner keys cache entries so any pool mutation
// invalidates them.
func NewScoringService(
	rosterRepo roster.Repository,
	scoringRepo scoring.Repository,
	rankingsCache *cache.Store,
	versioner stateVersioner,
	workers int,
) *ScoringService {
	if workers < 1 {
		workers = 1
	}
	return &ScoringService{
		rosterRepo:  rosterRepo,
		scoringRepo: scoringRepo,
		rankings:    rankingsCache,
		versioner:   versioner,
		workers:     workers,
	}
}

func (s *ScoringService) SetPoints(ctx context.Context, player string, points int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.SetPoints")
	defer span.End()

	player = strings.TrimSpace(player)
	if player == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	if err := s.scoringRepo.SetPoints(ctx, player, points); err != nil {
		return fmt.Errorf("set points: %w", err)
	}
	return nil
}

func (s *ScoringService) PlayerPoints(ctx context.Context, player string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.PlayerPoints")
	defer span.End()

	player = strings.TrimSpace(player)
	if player == "" {
		return 0, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	points, exists, err := s.scoringRepo.GetPoints(ctx, player)
	if err != nil {
		return 0, fmt.Errorf("get points: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: points for player %s", ErrNotFound, player)
	}
	return points, nil
}

// UserScore sums weight(slot) * points[player] across every roster the
// user holds. Players without published points contribute zero.
func (s *ScoringService) UserScore(ctx context.Context, userID string) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.UserScore")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	points, err := s.scoringRepo.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("snapshot points: %w", err)
	}
	rosters, err := s.rosterRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list rosters for %s: %w", userID, err)
	}

	total := 0.0
	for _, item := range rosters {
		total += scoreRoster(item.Players, points)
	}
	return total, nil
}

// Rankings scores every user in the pool, descending. The sort is stable
// over first-appearance order, so ties keep the order users joined in.
func (s *ScoringService) Rankings(ctx context.Context) ([]scoring.UserScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.Rankings")
	defer span.End()

	if s.rankings == nil || s.versioner == nil {
		return s.computeRankings(ctx)
	}

	key := fmt.Sprintf("rankings::v%d", s.versioner.Version())
	value, err := s.rankings.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeRankings(ctx)
	})
	if err != nil {
		return nil, err
	}

	ranked, ok := value.([]scoring.UserScore)
	if !ok {
		return s.computeRankings(ctx)
	}
	return ranked, nil
}

// computeRankings scores every user against one pool snapshot, so a pass
// racing a mutation sees the pool entirely before or entirely after it.
func (s *ScoringService) computeRankings(ctx context.Context) ([]scoring.UserScore, error) {
	snap, err := s.scoringRepo.PoolSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot pool: %w", err)
	}

	results := make([]scoring.UserScore, len(snap.Users))
	if len(snap.Users) >= rankingsParallelThreshold && s.workers > 1 {
		s.scoreUsersParallel(snap, results)
	} else {
		for i, userID := range snap.Users {
			results[i] = scoring.UserScore{UserID: userID, Score: scoreRosters(snap.Rosters[userID], snap.Points)}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func (s *ScoringService) scoreUsersParallel(snap scoring.PoolSnapshot, results []scoring.UserScore) {
	poolSize := s.workers
	if poolSize > len(snap.Users) {
		poolSize = len(snap.Users)
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		// Degrade to sequential scoring rather than failing the read.
		for i, userID := range snap.Users {
			results[i] = scoring.UserScore{UserID: userID, Score: scoreRosters(snap.Rosters[userID], snap.Points)}
		}
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, userID := range snap.Users {
		i, userID := i, userID
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = scoring.UserScore{UserID: userID, Score: scoreRosters(snap.Rosters[userID], snap.Points)}
		}
		if submitErr := pool.Submit(task); submitErr != nil {
			task()
		}
	}
	wg.Wait()
}

func scoreRosters(rosters [][]string, points map[string]int) float64 {
	total := 0.0
	for _, players := range rosters {
		total += scoreRoster(players, points)
	}
	return total
}

func scoreRoster(players []string, points map[string]int) float64 {
	total := 0.0
	for slot, player := range players {
		total += scoring.WeightForSlot(slot) * float64(points[player])
	}
	return total
}
