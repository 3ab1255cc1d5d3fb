package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/grocer/internal/model"
	"github.com/shopspring/decimal"
)

// AddItem appends an item to its category, creating the category if needed.
func (s *SQLiteStorage) AddItem(ctx context.Context, item model.InventoryItem) error {
	if err := requireContext(ctx); err != nil {
		return err
	}
	if err := requireText("category", item.Category); err != nil {
		return err
	}
	if err := requireText("name", item.Name); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO categories (name) VALUES (?)`, item.Category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO items (category_id, name, price, quantity)
		SELECT id, ?, ?, ? FROM categories WHERE name = ?`,
		item.Name, item.Price.String(), item.Quantity, item.Category)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item: %w", err)
	}

	slog.Debug("added item", "name", item.Name, "category", item.Category)
	return nil
}

// RemoveItem deletes the first stored item equal to item. Absent items are ignored.
func (s *SQLiteStorage) RemoveItem(ctx context.Context, item model.InventoryItem) error {
	if err := requireContext(ctx); err != nil {
		return err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.name, i.price, i.quantity, c.name
		FROM items i
		JOIN categories c ON c.id = i.category_id
		WHERE c.name = ? AND i.name = ?
		ORDER BY i.id`,
		item.Category, item.Name)
	if err != nil {
		return fmt.Errorf("failed to query items: %w", err)
	}

	var matchID int64
	for rows.Next() {
		id, candidate, scanErr := scanItem(rows)
		if scanErr != nil {
			_ = rows.Close()
			return scanErr
		}
		if candidate.Equal(item) {
			matchID = id
			break
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("error iterating items: %w", err)
	}
	// The single pinned connection must be released before the delete.
	if err := rows.Close(); err != nil {
		return fmt.Errorf("failed to close rows: %w", err)
	}

	if matchID == 0 {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, matchID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	slog.Debug("removed item", "name", item.Name, "category", item.Category)
	return nil
}

// FindItem returns the first item in category named name, or nil.
func (s *SQLiteStorage) FindItem(ctx context.Context, name, category string) (*model.InventoryItem, error) {
	if err := requireContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT i.id, i.name, i.price, i.quantity, c.name
		FROM items i
		JOIN categories c ON c.id = i.category_id
		WHERE c.name = ? AND i.name = ?
		ORDER BY i.id
		LIMIT 1`,
		category, name)

	_, item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Categories returns every category in creation order with its items.
func (s *SQLiteStorage) Categories(ctx context.Context) ([]model.CategoryGroup, error) {
	if err := requireContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, i.id, i.name, i.price, i.quantity
		FROM categories c
		LEFT JOIN items i ON i.category_id = c.id
		ORDER BY c.id, i.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var groups []model.CategoryGroup
	for rows.Next() {
		var (
			category string
			id       sql.NullInt64
			name     sql.NullString
			price    sql.NullString
			quantity sql.NullInt64
		)
		if err := rows.Scan(&category, &id, &name, &price, &quantity); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		if len(groups) == 0 || groups[len(groups)-1].Name != category {
			groups = append(groups, model.CategoryGroup{Name: category})
		}
		if !id.Valid {
			continue
		}

		amount, err := decimal.NewFromString(price.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse price for item %d: %w", id.Int64, err)
		}

		group := &groups[len(groups)-1]
		group.Items = append(group.Items, model.InventoryItem{
			Name:     name.String,
			Price:    amount,
			Quantity: int(quantity.Int64),
			Category: category,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(groups))
	return groups, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (int64, model.InventoryItem, error) {
	var (
		id    int64
		item  model.InventoryItem
		price string
	)
	if err := row.Scan(&id, &item.Name, &price, &item.Quantity, &item.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.InventoryItem{}, err
		}
		return 0, model.InventoryItem{}, fmt.Errorf("failed to scan item: %w", err)
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return 0, model.InventoryItem{}, fmt.Errorf("failed to parse price for item %d: %w", id, err)
	}
	item.Price = amount

	return id, item, nil
}
