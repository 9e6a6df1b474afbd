package handlers

import (
	"net/http"

	intconfig "kts-backend/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "kts backend running"})
}

// DBCheck pings the record store with a cheap count so a misconfigured DSN
// shows up immediately instead of on the first save.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected: " + err.Error()})
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM trips").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "trips_in_db": count})
}
