package catalogrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindItemByID(ctx context.Context, itemID int) (*domain.MenuItem, error) {
	query := `
        SELECT id, provider_id, name, price, is_available
        FROM menu_items
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, itemID)

	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.ProviderID, &item.Name, &item.Price, &item.IsAvailable)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find menu item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) FindItemsByProviderID(ctx context.Context, providerID int) ([]domain.MenuItem, error) {
	query := `
        SELECT id, provider_id, name, price, is_available
        FROM menu_items
        WHERE provider_id = $1
        ORDER BY name ASC
    `
	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		zap.L().Error("can't get menu items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(&item.ID, &item.ProviderID, &item.Name, &item.Price, &item.IsAvailable)
		if err != nil {
			zap.L().Error("can't scan menu item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
