package controller

import (
	"net/http"

	model "github.com/araad04/eqms/models"
	service "github.com/araad04/eqms/service"

	"github.com/gin-gonic/gin"
)

// SupplierController manages the approved-supplier endpoints.
type SupplierController struct {
	service *service.SupplierService
}

func NewSupplierController(service *service.SupplierService) *SupplierController {
	return &SupplierController{service}
}

// CreateSupplier stores a supplier and derives its requalification date
func (c *SupplierController) CreateSupplier(ctx *gin.Context) {
	var sup model.Supplier
	if err := ctx.ShouldBindJSON(&sup); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier payload", "details": err.Error()})
		return
	}

	if err := c.service.CreateSupplier(&sup); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Supplier created successfully",
		"supplier": sup,
	})
}

// UpdateSupplier applies changes and recomputes the requalification date
func (c *SupplierController) UpdateSupplier(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Supplier ID required"})
		return
	}

	var changes model.Supplier
	if err := ctx.ShouldBindJSON(&changes); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier payload", "details": err.Error()})
		return
	}

	sup, err := c.service.UpdateSupplier(id, changes)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Supplier updated successfully",
		"supplier": sup,
	})
}

// GetAllSuppliers lists suppliers, soonest requalification first
func (c *SupplierController) GetAllSuppliers(ctx *gin.Context) {
	suppliers, err := c.service.GetAllSuppliers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"suppliers": suppliers,
		"total":     len(suppliers),
	})
}
