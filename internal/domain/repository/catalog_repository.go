package repository

import (
	"context"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
)

// Convención de los puertos: GetByID devuelve (nil, nil) si no existe; Update y Delete
// devuelven domain.ErrNotFound si no afectaron ninguna fila.

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository puerto de persistencia para mercaderías.
// Update nunca modifica on_hand_quantity (ver StockRepository).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetView(ctx context.Context, id string) (*entity.ProductView, error)
	List(ctx context.Context) ([]*entity.ProductView, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// CarrierRepository puerto de persistencia para transportadoras.
type CarrierRepository interface {
	Create(ctx context.Context, c *entity.Carrier) error
	GetByID(ctx context.Context, id string) (*entity.Carrier, error)
	List(ctx context.Context) ([]*entity.Carrier, error)
	Update(ctx context.Context, c *entity.Carrier) error
	Delete(ctx context.Context, id string) error
}
