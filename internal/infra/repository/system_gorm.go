package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/system"
)

type SystemGormRepository struct {
	db *gorm.DB
}

var _ system.Repository = (*SystemGormRepository)(nil)

func NewSystemGormRepository(db *gorm.DB) *SystemGormRepository {
	return &SystemGormRepository{db: db}
}

func wipeable(table string) error {
	for _, t := range system.Collections {
		if t == table {
			return nil
		}
	}
	return fmt.Errorf("system: table %q is not wipeable", table)
}

func (r *SystemGormRepository) ListIDs(ctx context.Context, table string) ([]string, error) {
	if err := wipeable(table); err != nil {
		return nil, err
	}

	var ids []string
	if err := r.db.WithContext(ctx).Table(table).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SystemGormRepository) DeleteIDs(ctx context.Context, table string, ids []string) error {
	if err := wipeable(table); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE id IN ?", table), ids).Error
	})
}
