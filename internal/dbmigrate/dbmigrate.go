// Package dbmigrate applies the numbered SQL files under migrations/ once each,
// recording applied names in schema_migrations.
package dbmigrate

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Migration struct {
	Name string
	SQL  string
}

type appliedRow struct {
	Name      string    `gorm:"primaryKey;type:varchar(255)"`
	AppliedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (appliedRow) TableName() string { return "schema_migrations" }

// Load returns every *.sql file in fsys, ordered by name.
func Load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, n := range names {
		b, err := fs.ReadFile(fsys, n)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", n, err)
		}
		if strings.TrimSpace(string(b)) == "" {
			continue
		}
		out = append(out, Migration{Name: path.Base(n), SQL: string(b)})
	}
	return out, nil
}

// Pending filters out migrations whose name is already recorded.
func Pending(all []Migration, applied map[string]bool) []Migration {
	var out []Migration
	for _, m := range all {
		if !applied[m.Name] {
			out = append(out, m)
		}
	}
	return out
}

// Apply runs pending migrations in order. The DSN must allow multiple
// statements per Exec.
func Apply(ctx context.Context, db *gorm.DB, fsys fs.FS, log *slog.Logger) (int, error) {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&appliedRow{}); err != nil {
		return 0, fmt.Errorf("schema_migrations: %w", err)
	}

	var rows []appliedRow
	if err := db.Find(&rows).Error; err != nil {
		return 0, err
	}
	applied := make(map[string]bool, len(rows))
	for _, r := range rows {
		applied[r.Name] = true
	}

	all, err := Load(fsys)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, m := range Pending(all, applied) {
		if err := db.Exec(m.SQL).Error; err != nil {
			return n, fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if err := db.Create(&appliedRow{Name: m.Name, AppliedAt: time.Now()}).Error; err != nil {
			return n, fmt.Errorf("record %s: %w", m.Name, err)
		}
		log.Info("migration_applied", slog.String("name", m.Name))
		n++
	}
	return n, nil
}
