package postgres

import (
	"context"
	"database/sql"
	"errors"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"

	"github.com/lib/pq"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, COALESCE(description, ''), available, owner_id, request_id`

func scanItem(row interface{ Scan(...any) error }, it *domain.Item) error {
	return row.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID)
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (name, description, available, owner_id, request_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, it.Name, it.Description, it.Available, it.OwnerID, it.RequestID).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	it := &domain.Item{}
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	err := scanItem(r.db.QueryRowContext(ctx, query, id), it)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("item not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Item, error) {
	it := &domain.Item{}
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND owner_id = $2`
	err := scanItem(r.db.QueryRowContext(ctx, query, id, ownerID), it)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("item not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name=$1, description=$2, available=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.Available, it.ID)
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY id`
	return r.list(ctx, query, ownerID)
}

func (r *itemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + itemColumns + ` FROM items WHERE request_id = ANY($1) ORDER BY id`
	return r.list(ctx, query, pq.Array(requestIDs))
}

func (r *itemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
	          WHERE available = TRUE AND (name ILIKE $1 OR description ILIKE $1) ORDER BY id`
	return r.list(ctx, query, "%"+text+"%")
}

func (r *itemRepository) list(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
