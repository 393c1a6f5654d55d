package catalog

import (
	"context"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
)

type List[T any] struct {
	entity   Entity[T]
	resolver domain.StoreResolver
}

func NewList[T any](entity Entity[T], resolver domain.StoreResolver) *List[T] {
	return &List[T]{entity: entity, resolver: resolver}
}

func (uc *List[T]) Execute(ctx context.Context, ownerID string) ([]T, error) {
	return uc.entity.Collection(uc.resolver.For(ownerID)).List(ctx, ownerID)
}
