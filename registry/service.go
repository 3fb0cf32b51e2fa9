// Package registry runs product and client operations through normalization
// and validation before handing them to the record store.
package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pinnacle/erp/domain"
	"github.com/pinnacle/erp/repository"
)

// Service is the entry point used by the presentation layer.
type Service struct {
	store     *repository.Store
	validator domain.Validator
	log       *zap.Logger
}

// NewService creates a Service writing to store.
func NewService(store *repository.Store, validator domain.Validator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, validator: validator, log: log.Named("registry")}
}

// AddProduct validates p and stores it, returning it with its assigned id.
func (s *Service) AddProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p = domain.NormalizeProduct(p)
	if err := s.validator.Product(p); err != nil {
		s.log.Info("product rejected", zap.Error(err))
		return domain.Product{}, err
	}
	id, err := s.store.InsertProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("adding product: %w", err)
	}
	p.ID = id
	return p, nil
}

// Products lists every product.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.store.ListProducts(ctx)
}

// ReplaceProduct overwrites every mutable field of product id.
func (s *Service) ReplaceProduct(ctx context.Context, id int64, p domain.Product) (bool, error) {
	p = domain.NormalizeProduct(p)
	if err := s.validator.Product(p); err != nil {
		s.log.Info("product rejected", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	updated, err := s.store.UpdateProduct(ctx, id, p)
	if err != nil {
		return false, fmt.Errorf("replacing product %d: %w", id, err)
	}
	return updated, nil
}

// EditProduct applies the fields set in changes to product id.
func (s *Service) EditProduct(ctx context.Context, id int64, changes repository.ProductChangeSet) (bool, error) {
	changes = changes.Normalize()
	if err := changes.Validate(s.validator); err != nil {
		s.log.Info("product change rejected", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	updated, err := s.store.PatchProduct(ctx, id, changes)
	if err != nil {
		return false, fmt.Errorf("editing product %d: %w", id, err)
	}
	return updated, nil
}

// RemoveProduct deletes product id.
func (s *Service) RemoveProduct(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteProduct(ctx, id)
	if err != nil {
		return false, fmt.Errorf("removing product %d: %w", id, err)
	}
	return deleted, nil
}

// AddClient validates c and stores it, returning it with its assigned id.
func (s *Service) AddClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	c = domain.NormalizeClient(c)
	if err := s.validator.Client(c); err != nil {
		s.log.Info("client rejected", zap.Error(err))
		return domain.Client{}, err
	}
	id, err := s.store.InsertClient(ctx, c)
	if err != nil {
		return domain.Client{}, fmt.Errorf("adding client: %w", err)
	}
	c.ID = id
	return c, nil
}

// Clients lists every client.
func (s *Service) Clients(ctx context.Context) ([]domain.Client, error) {
	return s.store.ListClients(ctx)
}

// ReplaceClient overwrites every mutable field of client id.
func (s *Service) ReplaceClient(ctx context.Context, id int64, c domain.Client) (bool, error) {
	c = domain.NormalizeClient(c)
	if err := s.validator.Client(c); err != nil {
		s.log.Info("client rejected", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	updated, err := s.store.UpdateClient(ctx, id, c)
	if err != nil {
		return false, fmt.Errorf("replacing client %d: %w", id, err)
	}
	return updated, nil
}

// EditClient applies the fields set in changes to client id.
func (s *Service) EditClient(ctx context.Context, id int64, changes repository.ClientChangeSet) (bool, error) {
	changes = changes.Normalize()
	if err := changes.Validate(s.validator); err != nil {
		s.log.Info("client change rejected", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	updated, err := s.store.PatchClient(ctx, id, changes)
	if err != nil {
		return false, fmt.Errorf("editing client %d: %w", id, err)
	}
	return updated, nil
}

// RemoveClient deletes client id.
func (s *Service) RemoveClient(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteClient(ctx, id)
	if err != nil {
		return false, fmt.Errorf("removing client %d: %w", id, err)
	}
	return deleted, nil
}
