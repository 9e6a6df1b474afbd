package handlers

import (
	"net/http"
	"strconv"

	"kts-backend/internal/domain"
	"kts-backend/internal/http/middleware"
	"kts-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{RequestID: middleware.GetRequestID(c)}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid id")
		return 0, false
	}
	return id, true
}

func GetTrips(c *gin.Context) {
	out, err := tripService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateTrip(c *gin.Context) {
	var in services.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	rec, err := tripService(c).Save(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func UpdateTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	rec, err := tripService(c).Update(id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func DeleteTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := tripService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted"})
}

type deriveRequest struct {
	Detail       domain.TripDetail `json:"detail"`
	ChangedField string            `json:"changedField"`
}

// DeriveTrip recomputes the dependent detail fields after one edit. The UI
// calls this on every field change; nothing is persisted.
func DeriveTrip(c *gin.Context) {
	var in deriveRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	out := tripService(c).Derive(in.Detail, in.ChangedField)
	c.JSON(http.StatusOK, gin.H{"detail": out})
}
