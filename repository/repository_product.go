package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/pinnacle/erp/domain"
)

// InsertProduct appends a product and returns its store-assigned id.
func (s *Store) InsertProduct(ctx context.Context, product domain.Product) (int64, error) {
	var id int64
	err := s.sb.Insert(productTable).
		SetMap(productFields(product)).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return 0, persistenceError("insert product", err)
	}
	s.log.Debug("product inserted", zap.Int64("id", id))
	return id, nil
}

// ListProducts returns every product in insertion order.
func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.sb.Select(productColumns...).
		From(productTable).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, persistenceError("list products", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, persistenceError("list products", fmt.Errorf("scanning row: %w", err))
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("list products", err)
	}
	return products, nil
}

// UpdateProduct replaces every mutable field of the product with the given id.
// A missing id is not an error; updated reports whether a row matched.
func (s *Store) UpdateProduct(ctx context.Context, id int64, product domain.Product) (updated bool, err error) {
	return s.PatchProduct(ctx, id, productChangeSetOf(product))
}

// PatchProduct updates the fields set in changeSet. An empty change set does
// nothing and reports false.
func (s *Store) PatchProduct(ctx context.Context, id int64, changeSet ProductChangeSet) (updated bool, err error) {
	changes := changeSet.toMap()
	if len(changes) == 0 {
		return false, nil
	}
	res, err := s.sb.Update(productTable).
		Where(squirrel.Eq{"id": id}).
		SetMap(changes).
		ExecContext(ctx)
	if err != nil {
		return false, persistenceError("update product", fmt.Errorf("executing update: %w", err))
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, persistenceError("update product", fmt.Errorf("getting affected rows: %w", err))
	}
	s.log.Debug("product updated", zap.Int64("id", id), zap.Int64("rows", rowsAffected))
	return rowsAffected == 1, nil
}

// DeleteProduct removes the product with the given id. Deleting a missing id
// is a no-op; deleted reports whether a row was removed.
func (s *Store) DeleteProduct(ctx context.Context, id int64) (deleted bool, err error) {
	res, err := s.sb.Delete(productTable).
		Where(squirrel.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return false, persistenceError("delete product", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, persistenceError("delete product", fmt.Errorf("getting affected rows: %w", err))
	}
	s.log.Debug("product deleted", zap.Int64("id", id), zap.Int64("rows", rowsAffected))
	return rowsAffected == 1, nil
}
