package ginserver

import (
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/app/dto"
	CalendarApp "villastay/internal/app/handlers/calendar"
	"villastay/internal/app/queries"
)

type CalendarHandler struct {
	Queries       queries.Bus
	DefaultMonths int
}

func (h CalendarHandler) Calendar(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}

	from := time.Now().UTC()
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	months := h.DefaultMonths
	if months < 1 {
		months = 3
	}
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be a positive integer"})
			return
		}
		months = parsed
	}

	q := CalendarApp.GetCalendarQuery{
		VillaID: c.Param("id"),
		From:    from,
		Months:  months,
	}
	result, err := queries.Ask[CalendarApp.GetCalendarQuery, dto.Calendar](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ CalendarHTTP = CalendarHandler{}
