package models

import (
	"time"
)

// MeasurementType selects which body measurements matter for a customer.
// Stored as free text, so values outside the constants below are kept as-is.
type MeasurementType string

const (
	MeasurementUpper MeasurementType = "upper"
	MeasurementLower MeasurementType = "lower"
	MeasurementBoth  MeasurementType = "both"
)

// Customer columns use the same camelCase names as the JSON wire format.
type Customer struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	CustomerName string `gorm:"column:customerName;type:text;not null" json:"customerName"`
	Phone        string `gorm:"column:phone;type:text;not null" json:"phone"`
	Gender       string `gorm:"column:gender;type:text;not null" json:"gender"`

	// Upper body (cm)
	Chest        *float64 `gorm:"column:chest" json:"chest"`
	Waist        *float64 `gorm:"column:waist" json:"waist"`
	Shoulder     *float64 `gorm:"column:shoulder" json:"shoulder"`
	SleeveLength *float64 `gorm:"column:sleeveLength" json:"sleeveLength"`
	Armhole      *float64 `gorm:"column:armhole" json:"armhole"`
	Neck         *float64 `gorm:"column:neck" json:"neck"`

	// Lower body (cm)
	Hips   *float64 `gorm:"column:hips" json:"hips"`
	Inseam *float64 `gorm:"column:inseam" json:"inseam"`
	Thigh  *float64 `gorm:"column:thigh" json:"thigh"`
	Knee   *float64 `gorm:"column:knee" json:"knee"`

	MeasurementType *MeasurementType `gorm:"column:measurementType;type:varchar(20);default:'both'" json:"measurementType"`
	Notes           *string          `gorm:"column:notes;type:text" json:"notes"`
	TotalOrders     int              `gorm:"column:totalOrders;not null;default:0" json:"totalOrders"`
	LastOrderDate   *time.Time       `gorm:"column:lastOrderDate" json:"lastOrderDate"`
	CreatedAt       time.Time        `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time        `gorm:"column:updatedAt;autoUpdateTime" json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerInput carries the caller-writable fields of a Customer, used by
// both create and the full-replace update.
type CustomerInput struct {
	CustomerName string `json:"customerName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Gender       string `json:"gender" validate:"required"`

	Chest        *float64 `json:"chest"`
	Waist        *float64 `json:"waist"`
	Shoulder     *float64 `json:"shoulder"`
	SleeveLength *float64 `json:"sleeveLength"`
	Armhole      *float64 `json:"armhole"`
	Neck         *float64 `json:"neck"`

	Hips   *float64 `json:"hips"`
	Inseam *float64 `json:"inseam"`
	Thigh  *float64 `json:"thigh"`
	Knee   *float64 `json:"knee"`

	MeasurementType *MeasurementType `json:"measurementType"`
	Notes           *string          `json:"notes"`
}

// Columns returns every mutable column keyed by its storage name. Nil
// pointers map to NULL so that an update overwrites omitted fields.
func (in CustomerInput) Columns() map[string]interface{} {
	return map[string]interface{}{
		"customerName":    in.CustomerName,
		"phone":           in.Phone,
		"gender":          in.Gender,
		"chest":           in.Chest,
		"waist":           in.Waist,
		"shoulder":        in.Shoulder,
		"sleeveLength":    in.SleeveLength,
		"armhole":         in.Armhole,
		"neck":            in.Neck,
		"hips":            in.Hips,
		"inseam":          in.Inseam,
		"thigh":           in.Thigh,
		"knee":            in.Knee,
		"measurementType": in.MeasurementType,
		"notes":           in.Notes,
	}
}

// CustomerStats is the aggregate returned by GET /stats.
type CustomerStats struct {
	TotalCustomers  int64 `gorm:"column:totalCustomers" json:"totalCustomers"`
	MaleCustomers   int64 `gorm:"column:maleCustomers" json:"maleCustomers"`
	FemaleCustomers int64 `gorm:"column:femaleCustomers" json:"femaleCustomers"`
	TotalOrders     int64 `gorm:"column:totalOrders" json:"totalOrders"`
}
