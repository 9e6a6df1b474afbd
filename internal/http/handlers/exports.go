package handlers

import (
	"fmt"
	"net/http"

	"kts-backend/internal/http/middleware"
	"kts-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func exportService(c *gin.Context) services.ExportService {
	return services.ExportService{RequestID: middleware.GetRequestID(c)}
}

func GetTripExportRows(c *gin.Context) {
	rows, err := exportService(c).TripRows()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": services.TripExportColumns, "rows": rows})
}

func GetVehicleExpenseExportRows(c *gin.Context) {
	rows, err := exportService(c).VehicleExpenseRows(vehicleExpenseFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": services.VehicleExpenseExportColumns, "rows": rows})
}

func GetOfficeExpenseExportRows(c *gin.Context) {
	rows, err := exportService(c).OfficeExpenseRows()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": services.OfficeExpenseExportColumns, "rows": rows})
}

func GetTripLedgerPDF(c *gin.Context) {
	data, filename, err := exportService(c).TripLedgerPDF()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func GetTripVoucherPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data, filename, err := exportService(c).TripVoucherPDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func GetTripLedgerCSV(c *gin.Context) {
	data, filename, err := exportService(c).TripLedgerCSV()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", data)
}
