package products

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParams are pass-through storefront filters; empty fields do not filter.
type ListParams struct {
	Category   string
	SearchTerm string
}

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context, in ListParams) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&Product{})
	if c := strings.TrimSpace(in.Category); c != "" {
		q = q.Where("category = ?", c)
	}
	if s := in.SearchTerm; s != "" {
		like := "%" + s + "%"
		q = q.Where("(name LIKE ? OR description LIKE ?)", like, like)
	}

	var items []Product
	err := q.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrNotFound
	}
	return p, err
}

// SetInStock writes the stock flag. updated_at always changes so MySQL reports
// the row as affected even when the flag already had the requested value.
func (r *Repo) SetInStock(ctx context.Context, id string, inStock bool) error {
	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"in_stock":   inStock,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the product row and its image rows. Stored image objects are
// not touched here.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&Image{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

type CreateInput struct {
	Name        string
	Description string
	PriceCents  int64
	Category    string
	Brand       string
	InStock     bool
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (Product, error) {
	now := time.Now()
	p := Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Category:    in.Category,
		Brand:       in.Brand,
		InStock:     in.InStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) AddImage(ctx context.Context, productID, color, colorCode, ref string, position int) (Image, error) {
	im := Image{
		ID:        uuid.NewString(),
		ProductID: productID,
		Color:     color,
		ColorCode: colorCode,
		Image:     ref,
		Position:  position,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&im).Error; err != nil {
		return Image{}, err
	}
	return im, nil
}
