package database

import (
	"github.com/samber/lo"
	"github.com/yeremiapane/tailor-records/models"
	"github.com/yeremiapane/tailor-records/utils"
	"gorm.io/gorm"
)

// Migrate creates the customers and orders tables when absent. Safe to run
// on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{}, &models.Order{})
}

// Seed inserts the sample customers, but only into an empty table. It
// reports whether anything was inserted.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	samples := SampleCustomers()
	if err := db.Create(&samples).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Setup runs Migrate then Seed.
func Setup(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		utils.ErrorLogger.Errorf("Error creating schema: %v", err)
		return err
	}
	utils.InfoLogger.Println("Schema ready.")

	seeded, err := Seed(db)
	if err != nil {
		utils.ErrorLogger.Errorf("Error seeding sample customers: %v", err)
		return err
	}
	if seeded {
		utils.InfoLogger.Println("Sample customers inserted.")
	}
	return nil
}

// SampleCustomers returns the demo records, in insertion order. Gender is
// written in Arabic, so the Male/Female counts in the stats stay at zero.
func SampleCustomers() []models.Customer {
	upper := models.MeasurementUpper
	lower := models.MeasurementLower
	both := models.MeasurementBoth

	return []models.Customer{
		{
			CustomerName:    "أحمد محمد",
			Phone:           "0501234567",
			Gender:          "ذكر",
			Chest:           lo.ToPtr(100.0),
			Waist:           lo.ToPtr(85.0),
			Shoulder:        lo.ToPtr(45.0),
			SleeveLength:    lo.ToPtr(62.0),
			Armhole:         lo.ToPtr(48.0),
			Neck:            lo.ToPtr(40.0),
			MeasurementType: &upper,
			Notes:           lo.ToPtr("يفضل القصة الواسعة"),
			TotalOrders:     3,
		},
		{
			CustomerName:    "فاطمة علي",
			Phone:           "0559876543",
			Gender:          "أنثى",
			Chest:           lo.ToPtr(90.0),
			Waist:           lo.ToPtr(70.0),
			Shoulder:        lo.ToPtr(38.0),
			SleeveLength:    lo.ToPtr(56.0),
			Armhole:         lo.ToPtr(42.0),
			Neck:            lo.ToPtr(34.0),
			Hips:            lo.ToPtr(98.0),
			Inseam:          lo.ToPtr(76.0),
			Thigh:           lo.ToPtr(56.0),
			Knee:            lo.ToPtr(38.0),
			MeasurementType: &both,
			Notes:           lo.ToPtr("فستان سهرة"),
			TotalOrders:     5,
		},
		{
			CustomerName:    "خالد عبدالله",
			Phone:           "0543216789",
			Gender:          "ذكر",
			Hips:            lo.ToPtr(102.0),
			Inseam:          lo.ToPtr(80.0),
			Thigh:           lo.ToPtr(60.0),
			Knee:            lo.ToPtr(41.0),
			MeasurementType: &lower,
			TotalOrders:     2,
		},
	}
}
