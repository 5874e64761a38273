package repository

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/yeremiapane/tailor-records/apperrors"
	"github.com/yeremiapane/tailor-records/models"
	"gorm.io/gorm"
)

// Gender literals counted by Stats. Values in any other spelling or script
// are not counted.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// CustomerRepositoryInterface defines the operations used by the handlers.
type CustomerRepositoryInterface interface {
	List(ctx context.Context, search string) ([]models.Customer, error)
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	Create(ctx context.Context, in models.CustomerInput) (uint, error)
	Update(ctx context.Context, id uint, in models.CustomerInput) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Stats(ctx context.Context) (models.CustomerStats, error)
	ExportAll(ctx context.Context) ([]models.Customer, error)
}

// CustomerRepository is the gorm-backed implementation.
type CustomerRepository struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db, validate: validator.New()}
}

// List returns customers newest first. A non-empty search matches a
// substring of customerName or phone.
func (r *CustomerRepository) List(ctx context.Context, search string) ([]models.Customer, error) {
	q := r.DB.WithContext(ctx).Model(&models.Customer{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("customerName LIKE ? OR phone LIKE ?", like, like)
	}

	customers := []models.Customer{}
	if err := q.Order("id DESC").Find(&customers).Error; err != nil {
		return nil, apperrors.NewStorage("list customers", err)
	}
	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("customer", id)
	}
	if err != nil {
		return nil, apperrors.NewStorage("get customer", err)
	}
	return &c, nil
}

// Create validates the required fields and inserts a new customer,
// returning the id assigned by the store.
func (r *CustomerRepository) Create(ctx context.Context, in models.CustomerInput) (uint, error) {
	if err := r.validateRequired(in); err != nil {
		return 0, err
	}

	c := models.Customer{
		CustomerName:    in.CustomerName,
		Phone:           in.Phone,
		Gender:          in.Gender,
		Chest:           in.Chest,
		Waist:           in.Waist,
		Shoulder:        in.Shoulder,
		SleeveLength:    in.SleeveLength,
		Armhole:         in.Armhole,
		Neck:            in.Neck,
		Hips:            in.Hips,
		Inseam:          in.Inseam,
		Thigh:           in.Thigh,
		Knee:            in.Knee,
		MeasurementType: in.MeasurementType,
		Notes:           in.Notes,
	}
	if c.MeasurementType == nil || *c.MeasurementType == "" {
		c.MeasurementType = lo.ToPtr(models.MeasurementBoth)
	}

	if err := r.DB.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, apperrors.NewStorage("create customer", err)
	}
	return c.ID, nil
}

// Update overwrites every mutable field of the customer, including the ones
// left empty in the input, and refreshes updatedAt. It returns the number of
// rows changed, zero when the id does not exist.
func (r *CustomerRepository) Update(ctx context.Context, id uint, in models.CustomerInput) (int64, error) {
	cols := in.Columns()
	cols["updatedAt"] = time.Now()

	res := r.DB.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return 0, apperrors.NewStorage("update customer", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes the customer row only; orders that reference it are kept.
func (r *CustomerRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{})
	if res.Error != nil {
		return 0, apperrors.NewStorage("delete customer", res.Error)
	}
	return res.RowsAffected, nil
}

// Stats computes all counters in one pass over customers.
func (r *CustomerRepository) Stats(ctx context.Context) (models.CustomerStats, error) {
	var stats models.CustomerStats
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS totalCustomers,
			COALESCE(SUM(CASE WHEN gender = ? THEN 1 ELSE 0 END), 0) AS maleCustomers,
			COALESCE(SUM(CASE WHEN gender = ? THEN 1 ELSE 0 END), 0) AS femaleCustomers,
			COALESCE(SUM(totalOrders), 0) AS totalOrders
		FROM customers`, GenderMale, GenderFemale).Scan(&stats).Error
	if err != nil {
		return models.CustomerStats{}, apperrors.NewStorage("compute stats", err)
	}
	return stats, nil
}

// ExportAll dumps every customer in ascending id order.
func (r *CustomerRepository) ExportAll(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, apperrors.NewStorage("export customers", err)
	}
	return customers, nil
}

func (r *CustomerRepository) validateRequired(in models.CustomerInput) error {
	err := r.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidation()
	}
	fields := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		return fe.Field()
	})
	return apperrors.NewValidation(fields...)
}
