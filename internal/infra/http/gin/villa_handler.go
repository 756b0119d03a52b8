package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	VillaApp "villastay/internal/app/handlers/villa"
	"villastay/internal/app/queries"
)

type VillaHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
}

func (h VillaHandler) List(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	q := VillaApp.ListVillasQuery{ActiveOnly: c.Query("active") == "true"}
	result, err := queries.Ask[VillaApp.ListVillasQuery, []dto.Villa](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"villas": result})
}

func (h VillaHandler) Get(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	q := VillaApp.GetVillaQuery{VillaID: c.Param("id")}
	result, err := queries.Ask[VillaApp.GetVillaQuery, dto.Villa](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type createVillaRequest struct {
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	AmountCents   int64    `json:"base_price_cents"`
	Currency      string   `json:"currency"`
	MinStayNights int      `json:"min_stay_nights"`
	MaxGuests     int      `json:"max_guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Features      []string `json:"features"`
	OwnerName     string   `json:"owner_name"`
}

func (h VillaHandler) Create(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	var req createVillaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := VillaApp.CreateVillaCommand{
		CommandID:     generateCommandID(),
		Name:          req.Name,
		Code:          req.Code,
		Description:   req.Description,
		Location:      req.Location,
		Amount:        req.AmountCents,
		Currency:      req.Currency,
		MinStayNights: req.MinStayNights,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Features:      req.Features,
		OwnerName:     req.OwnerName,
	}
	result, err := commands.Dispatch[VillaApp.CreateVillaCommand, dto.Villa](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h VillaHandler) ToggleActive(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	cmd := VillaApp.ToggleVillaActiveCommand{VillaID: c.Param("id")}
	result, err := commands.Dispatch[VillaApp.ToggleVillaActiveCommand, dto.Villa](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h VillaHandler) ToggleFeatured(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	cmd := VillaApp.ToggleVillaFeaturedCommand{VillaID: c.Param("id")}
	result, err := commands.Dispatch[VillaApp.ToggleVillaFeaturedCommand, dto.Villa](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ VillaHTTP = VillaHandler{}
