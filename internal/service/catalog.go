package service

import (
	"context"
	"time"

	"github.com/deppfellow/simple-webapp/internal/model"
	"github.com/deppfellow/simple-webapp/internal/server"
)

// CatalogMessage is the constant message of GET /api/data.
const CatalogMessage = "Hello from Go API!"

var catalogItems = []model.Item{
	{ID: 1, Name: "Item 1", Description: "Description of the first item"},
	{ID: 2, Name: "Item 2", Description: "Description of the second item"},
	{ID: 3, Name: "Item 3", Description: "Description of the third item"},
}

// CatalogService serves the fixed data listing.
type CatalogService struct {
	server *server.Server
	now    func() time.Time
}

func NewCatalogService(s *server.Server) *CatalogService {
	return &CatalogService{
		server: s,
		now:    time.Now,
	}
}

// List returns the fixed items stamped with the current UTC time. Each
// call gets its own copy of the items.
func (svc *CatalogService) List(ctx context.Context) (model.DataListing, error) {
	items := make([]model.Item, len(catalogItems))
	copy(items, catalogItems)

	return model.DataListing{
		Message:   CatalogMessage,
		Timestamp: svc.now().UTC(),
		Data:      items,
	}, nil
}
