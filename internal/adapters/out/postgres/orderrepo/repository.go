package orderrepo

import (
	"context"
	"errors"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository and
// ports.ConnectivityChecker on PostgreSQL.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Migrate creates or updates the tables owned by the repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{}, &DiagnosticDTO{})
}

// Set writes every column, replacing a row with the same order id.
func (r *GormOrderRepository) Set(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return errs.NewStoreFailedError("encode order", err)
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
	if err != nil {
		return errs.NewStoreFailedError("set order", err)
	}
	return nil
}

// Update rewrites the mutable columns of an existing row. Zero values are
// written too, so clearing companyName is possible.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return errs.NewStoreFailedError("encode order", err)
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ?", dto.OrderID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreFailedError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", dto.OrderID)
	}
	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, errs.NewStoreFailedError("get order", err)
	}

	return toDomain(dto)
}

// List returns every order sorted by id.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("order_id").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreFailedError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Count returns the number of rows in the orders table.
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error; err != nil {
		return 0, errs.NewStoreFailedError("count orders", err)
	}
	return count, nil
}
