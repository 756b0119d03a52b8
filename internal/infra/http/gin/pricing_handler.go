package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/app/commands"
	PricingApp "villastay/internal/app/handlers/pricing"
)

type PricingHandler struct {
	Commands commands.Bus
}

type addSeasonalRequest struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

func (h PricingHandler) AddSeasonal(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	var req addSeasonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := time.Parse(time.DateOnly, req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(time.DateOnly, req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
		return
	}
	cmd := PricingApp.AddSeasonalPriceCommand{
		CommandID: generateCommandID(),
		VillaID:   c.Param("id"),
		Start:     start,
		End:       end,
		Amount:    req.AmountCents,
		Currency:  req.Currency,
	}
	result, err := commands.Dispatch[PricingApp.AddSeasonalPriceCommand, *PricingApp.AddSeasonalPriceResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h PricingHandler) RemoveSeasonal(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	cmd := PricingApp.RemoveSeasonalPriceCommand{RuleID: c.Param("ruleId")}
	if _, err := commands.Dispatch[PricingApp.RemoveSeasonalPriceCommand, struct{}](c.Request.Context(), h.Commands, cmd); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var _ PricingHTTP = PricingHandler{}
