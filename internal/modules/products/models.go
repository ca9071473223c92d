package products

import "time"

type Product struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	PriceCents  int64     `gorm:"column:price_cents;not null"`
	Category    string    `gorm:"type:varchar(64);not null;index:ix_products_category"`
	Brand       string    `gorm:"type:varchar(128);not null"`
	InStock     bool      `gorm:"column:in_stock;not null"`
	CreatedAt   time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt   time.Time `gorm:"type:datetime(3);not null"`

	Images []Image `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }

// ImageRefs returns the non-empty stored image references in display order.
func (p Product) ImageRefs() []string {
	out := make([]string, 0, len(p.Images))
	for _, im := range p.Images {
		if im.Image != "" {
			out = append(out, im.Image)
		}
	}
	return out
}

type Image struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	ProductID string    `gorm:"type:char(36);not null;index:ix_product_images_product_id"`
	Color     string    `gorm:"type:varchar(64);not null"`
	ColorCode string    `gorm:"column:color_code;type:varchar(16);not null"`
	Image     string    `gorm:"type:varchar(1024);not null"` // storage key or public URL
	Position  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Image) TableName() string { return "product_images" }
