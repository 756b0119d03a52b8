package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	BookingApp "villastay/internal/app/handlers/booking"
	"villastay/internal/app/queries"
	domainreservation "villastay/internal/domain/reservation"
)

type BookingHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
}

type contactRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	IdentityNumber string `json:"identity_number"`
}

type guestRequest struct {
	FullName       string `json:"full_name"`
	IdentityNumber string `json:"identity_number"`
}

type createBookingRequest struct {
	VillaID         string         `json:"villa_id"`
	CheckIn         time.Time      `json:"check_in"`
	CheckOut        time.Time      `json:"check_out"`
	Status          string         `json:"status"`
	Title           string         `json:"title"`
	Contact         contactRequest `json:"contact"`
	Guests          []guestRequest `json:"guests"`
	SpecialRequests string         `json:"special_requests"`
}

func (h BookingHandler) Create(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guests := make([]domainreservation.Guest, 0, len(req.Guests))
	for _, g := range req.Guests {
		guests = append(guests, domainreservation.Guest{FullName: g.FullName, IdentityNumber: g.IdentityNumber})
	}
	cmd := BookingApp.RequestBookingCommand{
		CommandID: generateCommandID(),
		VillaID:   req.VillaID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Status:    req.Status,
		Title:     req.Title,
		Contact: domainreservation.ContactPerson{
			FullName:       req.Contact.FullName,
			Email:          req.Contact.Email,
			Phone:          req.Contact.Phone,
			IdentityNumber: req.Contact.IdentityNumber,
		},
		Guests:          guests,
		SpecialRequests: req.SpecialRequests,
	}
	result, err := commands.Dispatch[BookingApp.RequestBookingCommand, *BookingApp.RequestBookingResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.Admitted {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h BookingHandler) Confirm(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	cmd := BookingApp.ConfirmBookingCommand{BookingID: c.Param("id")}
	result, err := commands.Dispatch[BookingApp.ConfirmBookingCommand, dto.Booking](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

func (h BookingHandler) Cancel(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	var req cancelBookingRequest
	_ = c.ShouldBindJSON(&req)
	cmd := BookingApp.CancelBookingCommand{BookingID: c.Param("id"), Reason: req.Reason}
	result, err := commands.Dispatch[BookingApp.CancelBookingCommand, dto.Booking](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h BookingHandler) List(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	q := BookingApp.ListBookingsQuery{VillaID: c.Query("villa_id")}
	result, err := queries.Ask[BookingApp.ListBookingsQuery, []dto.Booking](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": result})
}

func generateCommandID() string {
	return uuid.NewString()
}

var _ BookingHTTP = BookingHandler{}
