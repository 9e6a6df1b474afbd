package handlers

import (
	"net/http"

	"kts-backend/internal/domain"
	"kts-backend/internal/http/middleware"
	"kts-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func officeExpenseService(c *gin.Context) services.OfficeExpenseService {
	return services.OfficeExpenseService{RequestID: middleware.GetRequestID(c)}
}

func GetOfficeExpenses(c *gin.Context) {
	out, err := officeExpenseService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateOfficeExpense(c *gin.Context) {
	var in domain.OfficeExpenseRecord
	if !BindJSONOrError(c, &in) {
		return
	}
	rec, err := officeExpenseService(c).Save(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func UpdateOfficeExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in domain.OfficeExpenseRecord
	if !BindJSONOrError(c, &in) {
		return
	}
	rec, err := officeExpenseService(c).Update(id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func DeleteOfficeExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := officeExpenseService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "office expense deleted"})
}
