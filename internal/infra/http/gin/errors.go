package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	BookingApp "villastay/internal/app/handlers/booking"
	domainreservation "villastay/internal/domain/reservation"
	domainseasonal "villastay/internal/domain/seasonal"
	domainrange "villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	domainvilla "villastay/internal/domain/villa"
)

// respondError translates domain errors into HTTP status codes. Unknown errors
// stay opaque 500s so internals never leak through the API.
func respondError(c *gin.Context, err error) {
	var overlap *domainseasonal.OverlapError
	if errors.As(err, &overlap) {
		clashes := make([]gin.H, 0, len(overlap.Existing))
		for _, r := range overlap.Existing {
			clashes = append(clashes, gin.H{
				"rule_id": string(r.ID),
				"start":   r.Season.Start.Format("2006-01-02"),
				"end":     r.Season.End.Format("2006-01-02"),
			})
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "clashes": clashes})
		return
	}

	switch {
	case errors.Is(err, domainvilla.ErrVillaNotFound),
		errors.Is(err, domainreservation.ErrReservationNotFound),
		errors.Is(err, domainseasonal.ErrRuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainreservation.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainrange.ErrInvalidRange),
		errors.Is(err, domainrange.ErrInvalidSeason),
		errors.Is(err, money.ErrInvalidCurrency),
		errors.Is(err, money.ErrNegativeAmount),
		errors.Is(err, domainreservation.ErrContactRequired),
		errors.Is(err, domainvilla.ErrNameRequired),
		errors.Is(err, domainvilla.ErrInvalidPrice),
		errors.Is(err, domainvilla.ErrGuestsLimit),
		errors.Is(err, domainvilla.ErrMinStayNights),
		errors.Is(err, domainvilla.ErrVillaInactive),
		errors.Is(err, BookingApp.ErrTooManyGuests),
		errors.Is(err, BookingApp.ErrStayTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
