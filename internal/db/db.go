package db

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/cutcorp-booking/internal/config"
	"github.com/BruksfildServices01/cutcorp-booking/internal/logger"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

// slotIndexSQL enforces one blocking booking per slot. Walk-ins and
// pauses are allowed to stack on a slot, so they are left out.
const slotIndexSQL = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
	ON appointments (barber_id, date, time)
	WHERE status <> 'cancelled' AND source IN ('client-booking', 'recurring-plan')
`

func NewDB(cfg *config.Config, log *logger.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatal("failed to connect database", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", "error", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db, cfg.StrictSlotIndex); err != nil {
		log.Fatal("failed to migrate", "error", err)
	}

	created, err := EnsureAdmin(db, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatal("failed to bootstrap admin", "error", err)
	}
	if created {
		log.Info("admin account created", "email", strings.ToLower(cfg.AdminEmail))
	}

	return db
}

func Migrate(db *gorm.DB, strictSlots bool) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Barber{},
		&models.Appointment{},
		&models.MonthlyPlan{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	if strictSlots {
		return db.Exec(slotIndexSQL).Error
	}
	return db.Exec(`DROP INDEX IF EXISTS idx_appointments_active_slot`).Error
}

// EnsureAdmin creates the first operator when the users table is empty.
// It reports whether an account was created.
func EnsureAdmin(db *gorm.DB, email, password string) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if email == "" || password == "" {
		return false, errors.New("no users yet: set ADMIN_EMAIL and ADMIN_PASSWORD")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := &models.User{
		Name:         "Admin",
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		TokenVersion: 1,
	}
	if err := db.Create(user).Error; err != nil {
		return false, err
	}
	return true, nil
}
