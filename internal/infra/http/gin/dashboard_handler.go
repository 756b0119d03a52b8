package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/app/dto"
	DashboardApp "villastay/internal/app/handlers/dashboard"
	"villastay/internal/app/queries"
)

type DashboardHandler struct {
	Queries queries.Bus
}

func (h DashboardHandler) Occupancy(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	ref := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		ref = parsed
	}
	q := DashboardApp.WeeklyOccupancyQuery{ReferenceDate: ref}
	result, err := queries.Ask[DashboardApp.WeeklyOccupancyQuery, dto.Occupancy](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h DashboardHandler) Stats(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	q := DashboardApp.GetStatsQuery{ReferenceDate: time.Now().UTC()}
	result, err := queries.Ask[DashboardApp.GetStatsQuery, dto.Stats](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ DashboardHTTP = DashboardHandler{}
