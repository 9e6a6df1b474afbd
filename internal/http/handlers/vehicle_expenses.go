package handlers

import (
	"net/http"

	"kts-backend/internal/domain"
	"kts-backend/internal/http/middleware"
	"kts-backend/internal/repositories"
	"kts-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func vehicleExpenseService(c *gin.Context) services.VehicleExpenseService {
	return services.VehicleExpenseService{RequestID: middleware.GetRequestID(c)}
}

func vehicleExpenseFilter(c *gin.Context) repositories.VehicleExpenseFilter {
	return repositories.VehicleExpenseFilter{
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
		VehicleNo: c.Query("vehicle"),
	}
}

func GetVehicleExpenses(c *gin.Context) {
	out, err := vehicleExpenseService(c).List(vehicleExpenseFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateVehicleExpense(c *gin.Context) {
	var in domain.VehicleExpenseRecord
	if !BindJSONOrError(c, &in) {
		return
	}
	rec, err := vehicleExpenseService(c).Save(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func UpdateVehicleExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in domain.VehicleExpenseRecord
	if !BindJSONOrError(c, &in) {
		return
	}
	rec, err := vehicleExpenseService(c).Update(id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func DeleteVehicleExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := vehicleExpenseService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle expense deleted"})
}
