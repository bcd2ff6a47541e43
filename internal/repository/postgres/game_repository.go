package postgres

import (
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.GameRepository = (*GameRepositoryImpl)(nil)

type GameRepositoryImpl struct {
	*TransactionManager
}

func NewGameRepository(pool *pgxpool.Pool) repository.GameRepository {
	return &GameRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// ListActiveGames retrieves active games ordered by rank, then name
func (r *GameRepositoryImpl) ListActiveGames(ctx context.Context, filter model.GameFilter) ([]*model.Game, int, error) {
	where := `
        WHERE is_active = TRUE
          AND ($1 = '' OR category = $1)
          AND ($2 = '' OR provider = $2)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM games`+where, filter.Category, filter.Provider).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count games: %w", err)
	}

	query := `
        SELECT game_id, gpid, name, category, provider, image_url, is_active, rank
        FROM games` + where + `
        ORDER BY rank ASC, name ASC
        LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, filter.Category, filter.Provider, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := make([]*model.Game, 0)
	for rows.Next() {
		g := &model.Game{}
		if err := rows.Scan(&g.GameID, &g.GPID, &g.Name, &g.Category, &g.Provider, &g.ImageURL, &g.IsActive, &g.Rank); err != nil {
			return nil, 0, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate games: %w", err)
	}
	return games, total, nil
}
