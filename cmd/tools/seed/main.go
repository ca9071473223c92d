package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ahmed-hessen/E-shop/internal/config"
	"github.com/Ahmed-hessen/E-shop/internal/modules/orders"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
	"github.com/Ahmed-hessen/E-shop/internal/modules/users"
	"github.com/Ahmed-hessen/E-shop/internal/storage"
)

type demoImage struct {
	Color string
	Code  string
	RGBA  color.RGBA
}

type demoProduct struct {
	products.CreateInput
	Images []demoImage
}

var demoProducts = []demoProduct{
	{products.CreateInput{Name: "iPhone 14", Description: "6.1-inch display, A15 chip.", PriceCents: 79900, Category: "Phone", Brand: "Apple", InStock: true},
		[]demoImage{{"White", "#FFFFFF", color.RGBA{250, 250, 250, 255}}, {"Midnight", "#1C1C1E", color.RGBA{28, 28, 30, 255}}}},
	{products.CreateInput{Name: "Galaxy Buds", Description: "Wireless earbuds with noise cancelling.", PriceCents: 14999, Category: "Accessories", Brand: "Samsung", InStock: true},
		[]demoImage{{"Graphite", "#383428", color.RGBA{56, 52, 40, 255}}}},
	{products.CreateInput{Name: "ThinkPad X1", Description: "14-inch business laptop.", PriceCents: 189900, Category: "Laptop", Brand: "Lenovo", InStock: false},
		[]demoImage{{"Black", "#000000", color.RGBA{0, 0, 0, 255}}}},
	{products.CreateInput{Name: "Apple Watch SE", Description: "Fitness and sleep tracking.", PriceCents: 24900, Category: "Watch", Brand: "Apple", InStock: true},
		nil},
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fatal(log, "config_invalid", err)
	}
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		fatal(log, "db_connect_failed", err)
	}
	st, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		fatal(log, "storage_init_failed", err)
	}

	admin, err := seedUser(ctx, db, envOr("SEED_ADMIN_EMAIL", "admin@example.com"), envOr("SEED_ADMIN_PASSWORD", "admin123"), users.RoleAdmin)
	if err != nil {
		fatal(log, "seed_admin_failed", err)
	}
	shopper, err := seedUser(ctx, db, "shopper@example.com", "shopper123", users.RoleUser)
	if err != nil {
		fatal(log, "seed_user_failed", err)
	}

	productRepo := products.NewRepo(db)
	for _, dp := range demoProducts {
		p, err := productRepo.Create(ctx, dp.CreateInput)
		if err != nil {
			fatal(log, "seed_product_failed", err)
		}
		for i, img := range dp.Images {
			res, err := st.Put(ctx, bytes.NewReader(swatch(img.RGBA)), storage.PutInput{
				Filename:    img.Color + ".png",
				ContentType: "image/png",
			})
			if err != nil {
				fatal(log, "seed_image_upload_failed", err)
			}
			if _, err := productRepo.AddImage(ctx, p.ID, img.Color, img.Code, res.URL, i); err != nil {
				fatal(log, "seed_image_failed", err)
			}
		}
		log.Info("seed_product", slog.String("id", p.ID), slog.String("name", p.Name), slog.Int("images", len(dp.Images)))
	}

	orderRepo := orders.NewRepo(db)
	for _, in := range []orders.CreateInput{
		{UserID: shopper.ID, AmountCents: 79900, Currency: cfg.Currency, Status: orders.StatusComplete, DeliveryStatus: "delivered"},
		{UserID: shopper.ID, AmountCents: 14999, Currency: cfg.Currency, Status: orders.StatusComplete, DeliveryStatus: "dispatched"},
		{UserID: shopper.ID, AmountCents: 24900, Currency: cfg.Currency, Status: orders.StatusPending, DeliveryStatus: "pending"},
	} {
		if _, err := orderRepo.Create(ctx, in); err != nil {
			fatal(log, "seed_order_failed", err)
		}
	}

	log.Info("seed_done", slog.String("admin", admin.Email), slog.String("storage", cfg.Storage.Driver))
}

// seedUser creates the user or returns the existing one with that email.
func seedUser(ctx context.Context, db *gorm.DB, email, password, role string) (users.User, error) {
	repo := users.NewRepo(db)
	if u, err := repo.GetByEmail(ctx, email); err == nil {
		return u, nil
	} else if !errors.Is(err, users.ErrNotFound) {
		return users.User{}, err
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return users.User{}, err
	}
	return repo.Create(ctx, users.CreateInput{Name: role, Email: email, PasswordHash: hash, Role: role})
}

func swatch(c color.RGBA) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, slog.Any("err", err))
	os.Exit(1)
}
