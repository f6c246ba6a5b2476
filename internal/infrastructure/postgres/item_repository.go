package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item. SKU debe ser único.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, category_id, name, sku, default_selling_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.Name, item.SKU, item.DefaultSellingPrice,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, category_id, name, sku, default_selling_price, created_at, updated_at
		FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un item por SKU.
func (r *ItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	query := `
		SELECT id, category_id, name, sku, default_selling_price, created_at, updated_at
		FROM items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.CategoryID, &it.Name, &it.SKU,
		&it.DefaultSellingPrice, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update actualiza nombre, categoría, SKU y precio por defecto.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET category_id = $2, name = $3, sku = $4, default_selling_price = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.Name, item.SKU, item.DefaultSellingPrice)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateDefaultSellingPrice actualiza solo el precio de venta por defecto.
func (r *ItemRepo) UpdateDefaultSellingPrice(itemID string, price decimal.Decimal) error {
	query := `UPDATE items SET default_selling_price = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, itemID, price)
	if err != nil {
		return fmt.Errorf("update item price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCategory lista los items de una categoría.
func (r *ItemRepo) ListByCategory(categoryID string) ([]*entity.Item, error) {
	query := `
		SELECT id, category_id, name, sku, default_selling_price, created_at, updated_at
		FROM items WHERE category_id = $1 ORDER BY name`
	return r.list(query, categoryID)
}

// List lista todos los items.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `
		SELECT id, category_id, name, sku, default_selling_price, created_at, updated_at
		FROM items ORDER BY name`
	return r.list(query)
}

func (r *ItemRepo) list(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.SKU,
			&it.DefaultSellingPrice, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina el item (solo catálogo; los lotes se borran aparte).
func (r *ItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
