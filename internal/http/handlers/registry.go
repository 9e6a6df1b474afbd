package handlers

import (
	"net/http"
	"strconv"

	"kts-backend/internal/domain"
	"kts-backend/internal/http/middleware"
	"kts-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func registryService(c *gin.Context) services.RegistryService {
	return services.RegistryService{RequestID: middleware.GetRequestID(c)}
}

func GetRegistry(c *gin.Context) {
	out, err := registryService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": out})
}

func GetRegistryEntry(c *gin.Context) {
	rec, err := registryService(c).Get(c.Param("vehicleNo"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// SaveRegistryEntry upserts by vehicle number: an already-registered number
// updates its row, a new one inserts.
func SaveRegistryEntry(c *gin.Context) {
	var in domain.VehicleDriverDetail
	if !BindJSONOrError(c, &in) {
		return
	}
	rec, err := registryService(c).Save(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func DeleteRegistryEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := registryService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registry entry deleted"})
}

// GetExpiringDocuments lists statutory documents lapsing within ?days
// (default 30), lapsed ones included.
func GetExpiringDocuments(c *gin.Context) {
	days := 30
	if q := c.Query("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "bad_request", "invalid days")
			return
		}
		days = n
	}
	out, err := registryService(c).Expiring(days)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withinDays": days, "documents": out})
}
