package cache

import (
	"context"
	"fmt"

	"lycosidae/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// RedisLeaderboard mirrors team scores into one sorted set per
// competition so leaderboard reads skip Postgres on the hot path.
type RedisLeaderboard struct {
	rdb *redis.Client
}

func NewRedisLeaderboard(rdb *redis.Client) *RedisLeaderboard {
	return &RedisLeaderboard{rdb: rdb}
}

func leaderboardKey(competitionID string) string {
	return "leaderboard:" + competitionID
}

func (l *RedisLeaderboard) SetTeamScore(ctx context.Context, competitionID, teamID string, score int) error {
	err := l.rdb.ZAdd(ctx, leaderboardKey(competitionID), redis.Z{
		Score:  float64(score),
		Member: teamID,
	}).Err()
	if err != nil {
		return fmt.Errorf("leaderboard ZAdd: %w", err)
	}
	return nil
}

func (l *RedisLeaderboard) RemoveTeam(ctx context.Context, competitionID, teamID string) error {
	if err := l.rdb.ZRem(ctx, leaderboardKey(competitionID), teamID).Err(); err != nil {
		return fmt.Errorf("leaderboard ZRem: %w", err)
	}
	return nil
}

// TopTeams returns standings best-first. An empty slice means the set
// is cold and the caller should fall back to the database.
func (l *RedisLeaderboard) TopTeams(ctx context.Context, competitionID string, limit int) ([]model.TeamStanding, error) {
	stop := int64(limit) - 1
	if limit <= 0 {
		stop = -1 // full range
	}
	entries, err := l.rdb.ZRevRangeWithScores(ctx, leaderboardKey(competitionID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard ZRevRange: %w", err)
	}

	standings := make([]model.TeamStanding, 0, len(entries))
	for i, entry := range entries {
		teamID, _ := entry.Member.(string)
		standings = append(standings, model.TeamStanding{
			TeamID: teamID,
			Score:  int(entry.Score),
			Rank:   i + 1,
		})
	}
	return standings, nil
}
