package products

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

const (
	msgStockChanged = "Product status changed"
	msgStockFailed  = "Oops! Something went wrong"
	msgDeleting     = "Deleting product, please wait...."
	msgDeleted      = "Product deleted"
	msgDeleteFailed = "Failed to delete product"
)

// Backend persists the two product mutations the admin grid can issue.
type Backend interface {
	SetInStock(ctx context.Context, id string, inStock bool) error
	Delete(ctx context.Context, id string) error
}

// ImageStore deletes a stored image by its key or public URL.
type ImageStore interface {
	Delete(ctx context.Context, ref string) error
}

// Notifier is the user-visible message surface. Calls never fail.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// Invalidator drops read-side snapshots after a successful write.
type Invalidator interface {
	Invalidate()
}

type Recorder interface {
	StockToggled(ok bool)
	ProductDeleted(ok bool)
	ImageDeleteFailed()
}

type DeleteState string

const (
	StateCancelled DeleteState = "cancelled"
	StateDone      DeleteState = "done"
	StateFailed    DeleteState = "failed"
)

type DeleteResult struct {
	State           DeleteState
	ImagesAttempted int
	// ImageErr joins every image deletion failure; it never changes State.
	ImageErr error
	Err      error
}

// Manager runs the admin product actions: notify the user, write through the
// backend, then invalidate the read side so the next page load re-fetches.
type Manager struct {
	backend Backend
	images  ImageStore
	inv     Invalidator
	rec     Recorder
	log     *slog.Logger
}

func NewManager(backend Backend, images ImageStore, inv Invalidator, rec Recorder, log *slog.Logger) *Manager {
	if rec == nil {
		rec = nopRecorder{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{backend: backend, images: images, inv: inv, rec: rec, log: log}
}

// ToggleStock sends the negation of current. On failure the stored flag is
// left as it was and nothing is invalidated.
func (m *Manager) ToggleStock(ctx context.Context, n Notifier, id string, current bool) error {
	if err := m.backend.SetInStock(ctx, id, !current); err != nil {
		m.rec.StockToggled(false)
		m.log.ErrorContext(ctx, "product_stock_toggle_failed",
			slog.String("product_id", id),
			slog.Any("err", err),
		)
		n.Error(msgStockFailed)
		return fmt.Errorf("toggle stock %s: %w", id, err)
	}

	m.rec.StockToggled(true)
	n.Success(msgStockChanged)
	m.inv.Invalidate()
	return nil
}

// Delete removes a product after confirmation. Every image is attempted even
// if earlier ones fail, and the record delete runs regardless of image
// failures. There is no rollback of already deleted images.
func (m *Manager) Delete(ctx context.Context, n Notifier, id string, images []string, confirmed bool) DeleteResult {
	if !confirmed {
		return DeleteResult{State: StateCancelled}
	}

	n.Info(msgDeleting)

	res := DeleteResult{}
	res.ImagesAttempted, res.ImageErr = m.deleteImages(ctx, id, images)

	if err := m.backend.Delete(ctx, id); err != nil {
		m.rec.ProductDeleted(false)
		m.log.ErrorContext(ctx, "product_delete_failed",
			slog.String("product_id", id),
			slog.Any("err", err),
		)
		n.Error(msgDeleteFailed)
		res.State = StateFailed
		res.Err = fmt.Errorf("delete product %s: %w", id, err)
		return res
	}

	m.rec.ProductDeleted(true)
	n.Success(msgDeleted)
	m.inv.Invalidate()
	res.State = StateDone
	return res
}

func (m *Manager) deleteImages(ctx context.Context, productID string, refs []string) (int, error) {
	attempted := 0
	var errs []error
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		attempted++
		if err := m.images.Delete(ctx, ref); err != nil {
			m.rec.ImageDeleteFailed()
			m.log.WarnContext(ctx, "product_image_delete_failed",
				slog.String("product_id", productID),
				slog.String("image", ref),
				slog.Any("err", err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", ref, err))
			continue
		}
		m.log.InfoContext(ctx, "product_image_deleted",
			slog.String("product_id", productID),
			slog.String("image", ref),
		)
	}
	return attempted, errors.Join(errs...)
}

type nopRecorder struct{}

func (nopRecorder) StockToggled(bool)   {}
func (nopRecorder) ProductDeleted(bool) {}
func (nopRecorder) ImageDeleteFailed()  {}
