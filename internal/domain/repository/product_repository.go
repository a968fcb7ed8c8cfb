package repository

import (
	"context"

	"tecnoseguridad/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListAll materializes the full collection, newest first. There is
	// no pagination; callers get everything in one read.
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// UpdateFields merges only the supplied fields into the document.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
