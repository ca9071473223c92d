package orders

import "time"

// Statuses the admin summary recognises. Other values are stored and counted
// as orders but belong to neither the paid nor the unpaid bucket.
const (
	StatusComplete = "complete"
	StatusPending  = "pending"
)

type Order struct {
	ID             string    `gorm:"primaryKey;type:char(36)"`
	UserID         string    `gorm:"type:char(36);not null;index:ix_orders_user_id"`
	AmountCents    int64     `gorm:"column:amount_cents;not null"`
	Currency       string    `gorm:"type:char(3);not null"`
	Status         string    `gorm:"type:varchar(32);not null;index:ix_orders_status"`
	DeliveryStatus string    `gorm:"column:delivery_status;type:varchar(32);not null"`
	CreatedAt      time.Time `gorm:"type:datetime(3);not null"`
}

func (Order) TableName() string { return "orders" }
