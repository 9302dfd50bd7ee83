package service

import (
	"context"

	"github.com/folio/backend/internal/docstore"
	"github.com/folio/backend/internal/model"
)

// PortfolioService exposes the read-only portfolio collection.
type PortfolioService interface {
	// List returns every portfolio item verbatim. An empty collection is a
	// successful empty result, not an error.
	List(ctx context.Context) ([]model.Document, error)
}

type portfolioServiceImpl struct {
	store      docstore.Store
	collection string
}

// NewPortfolioService creates a PortfolioService reading the given collection path.
func NewPortfolioService(store docstore.Store, collection string) PortfolioService {
	return &portfolioServiceImpl{store: store, collection: collection}
}

func (s *portfolioServiceImpl) List(ctx context.Context) ([]model.Document, error) {
	if s.store == nil {
		return nil, docstore.ErrUnavailable
	}
	return s.store.List(ctx, s.collection)
}
