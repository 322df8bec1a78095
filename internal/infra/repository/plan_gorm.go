package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/plan"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type PlanGormRepository struct {
	db *gorm.DB
}

var _ plan.Repository = (*PlanGormRepository)(nil)

func NewPlanGormRepository(db *gorm.DB) *PlanGormRepository {
	return &PlanGormRepository{db: db}
}

func (r *PlanGormRepository) CreatePlanWithAppointments(
	ctx context.Context,
	p *models.MonthlyPlan,
	occurrences []models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range occurrences {
			occurrences[i].PlanID = &p.ID
		}
		if len(occurrences) == 0 {
			return nil
		}
		return tx.Create(&occurrences).Error
	})
	// strict index rejected one of the occurrences; nothing was committed
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}
	return err
}

func (r *PlanGormRepository) GetPlan(ctx context.Context, id string) (*models.MonthlyPlan, error) {
	var p models.MonthlyPlan
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PlanGormRepository) UpdatePlan(ctx context.Context, p *models.MonthlyPlan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PlanGormRepository) ListActivePlans(ctx context.Context) ([]models.MonthlyPlan, error) {
	var list []models.MonthlyPlan
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("weekday ASC, time ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PlanGormRepository) ListPlanAppointments(ctx context.Context, planID string) ([]models.Appointment, error) {
	var list []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("date ASC, time ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
