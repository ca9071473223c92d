package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	var items []Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

type CreateInput struct {
	UserID         string
	AmountCents    int64
	Currency       string
	Status         string
	DeliveryStatus string
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (Order, error) {
	o := Order{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		AmountCents:    in.AmountCents,
		Currency:       in.Currency,
		Status:         in.Status,
		DeliveryStatus: in.DeliveryStatus,
		CreatedAt:      time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return Order{}, err
	}
	return o, nil
}
