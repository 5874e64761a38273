package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/tailor-records/apperrors"
	"github.com/yeremiapane/tailor-records/models"
	"github.com/yeremiapane/tailor-records/repository"
	"github.com/yeremiapane/tailor-records/utils"
)

const (
	MsgCustomerNotFound      = "Customer not found"
	MsgMissingRequiredFields = "Missing required fields (name, phone, gender)"
	MsgCustomerAdded         = "Customer added successfully"
	MsgCustomerUpdated       = "Customer updated successfully"
	MsgCustomerDeleted       = "Customer deleted successfully"
)

type CustomerController struct {
	Repo repository.CustomerRepositoryInterface
}

func NewCustomerController(repo repository.CustomerRepositoryInterface) *CustomerController {
	return &CustomerController{Repo: repo}
}

// GetAllCustomers -> GET /customers?search=
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Repo.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, customers)
}

// GetCustomerByID -> GET /customers/:id
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	customer, err := cc.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, customer)
}

// CreateCustomer -> POST /customers
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	body, ok := bindCustomerInput(c)
	if !ok {
		return
	}

	id, err := cc.Repo.Create(c.Request.Context(), body)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", id)
	c.JSON(http.StatusOK, utils.MessageResponse{ID: id, Message: MsgCustomerAdded})
}

// UpdateCustomer -> PUT /customers/:id, replaces every mutable field.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	body, ok := bindCustomerInput(c)
	if !ok {
		return
	}

	affected, err := cc.Repo.Update(c.Request.Context(), id, body)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if affected == 0 {
		utils.RespondErrorMessage(c, http.StatusNotFound, MsgCustomerNotFound)
		return
	}

	utils.RespondMessage(c, http.StatusOK, MsgCustomerUpdated)
}

// DeleteCustomer -> DELETE /customers/:id
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	affected, err := cc.Repo.Delete(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if affected == 0 {
		utils.RespondErrorMessage(c, http.StatusNotFound, MsgCustomerNotFound)
		return
	}

	utils.InfoLogger.Printf("Customer deleted (ID=%d)", id)
	utils.RespondMessage(c, http.StatusOK, MsgCustomerDeleted)
}

// GetStats -> GET /stats
func (cc *CustomerController) GetStats(c *gin.Context) {
	stats, err := cc.Repo.Stats(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, stats)
}

// ExportData -> GET /export
func (cc *CustomerController) ExportData(c *gin.Context) {
	customers, err := cc.Repo.ExportAll(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, customers)
}

// bindCustomerInput decodes the request body. An empty body decodes to an
// empty input so that create reports the missing fields.
func bindCustomerInput(c *gin.Context) (models.CustomerInput, bool) {
	var body models.CustomerInput
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return body, false
	}
	return body, true
}

// customerID parses the :id path param. Anything that is not a positive
// integer cannot name a row, so it is answered with 404 directly.
func customerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondErrorMessage(c, http.StatusNotFound, MsgCustomerNotFound)
		return 0, false
	}
	return uint(id), true
}

func respondRepoError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		utils.RespondErrorMessage(c, http.StatusBadRequest, MsgMissingRequiredFields)
	case apperrors.IsNotFound(err):
		utils.RespondErrorMessage(c, http.StatusNotFound, MsgCustomerNotFound)
	default:
		var storageErr *apperrors.StorageError
		if errors.As(err, &storageErr) {
			utils.ErrorLogger.Errorf("%s failed: %v", storageErr.Op, storageErr.Err)
		} else {
			utils.ErrorLogger.Errorf("unexpected error: %v", err)
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
