package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/pinnacle/erp/domain"
)

// InsertClient appends a client and returns its store-assigned id.
func (s *Store) InsertClient(ctx context.Context, client domain.Client) (int64, error) {
	var id int64
	err := s.sb.Insert(clientTable).
		SetMap(clientFields(client)).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return 0, persistenceError("insert client", err)
	}
	s.log.Debug("client inserted", zap.Int64("id", id))
	return id, nil
}

// ListClients returns every client in insertion order.
func (s *Store) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := s.sb.Select(clientColumns...).
		From(clientTable).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, persistenceError("list clients", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, persistenceError("list clients", fmt.Errorf("scanning row: %w", err))
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("list clients", err)
	}
	return clients, nil
}

// UpdateClient replaces every mutable field of the client with the given id.
// A missing id is not an error; updated reports whether a row matched.
func (s *Store) UpdateClient(ctx context.Context, id int64, client domain.Client) (updated bool, err error) {
	return s.PatchClient(ctx, id, clientChangeSetOf(client))
}

// PatchClient updates the fields set in changeSet. An empty change set does
// nothing and reports false.
func (s *Store) PatchClient(ctx context.Context, id int64, changeSet ClientChangeSet) (updated bool, err error) {
	changes := changeSet.toMap()
	if len(changes) == 0 {
		return false, nil
	}
	res, err := s.sb.Update(clientTable).
		Where(squirrel.Eq{"id": id}).
		SetMap(changes).
		ExecContext(ctx)
	if err != nil {
		return false, persistenceError("update client", fmt.Errorf("executing update: %w", err))
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, persistenceError("update client", fmt.Errorf("getting affected rows: %w", err))
	}
	s.log.Debug("client updated", zap.Int64("id", id), zap.Int64("rows", rowsAffected))
	return rowsAffected == 1, nil
}

// DeleteClient removes the client with the given id. Deleting a missing id
// is a no-op; deleted reports whether a row was removed.
func (s *Store) DeleteClient(ctx context.Context, id int64) (deleted bool, err error) {
	res, err := s.sb.Delete(clientTable).
		Where(squirrel.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return false, persistenceError("delete client", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, persistenceError("delete client", fmt.Errorf("getting affected rows: %w", err))
	}
	s.log.Debug("client deleted", zap.Int64("id", id), zap.Int64("rows", rowsAffected))
	return rowsAffected == 1, nil
}
