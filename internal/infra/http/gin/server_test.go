package ginserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/app/commands"
	bookingapp "villastay/internal/app/handlers/booking"
	calendarapp "villastay/internal/app/handlers/calendar"
	"villastay/internal/app/middleware"
	"villastay/internal/app/queries"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
	"villastay/internal/infra/config"
	ginserver "villastay/internal/infra/http/gin"
	"villastay/internal/infra/obs"
	"villastay/internal/infra/storage/memory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	factory := memory.Factory{
		VillaRepo:       memory.NewVillaRepository(),
		ReservationRepo: memory.NewReservationRepository(),
		SeasonalRepo:    memory.NewSeasonalRepository(),
	}
	v, err := villa.New(villa.CreateParams{
		ID:            "villa-1",
		Name:          "Cliffside",
		BasePrice:     money.Must(15000, money.USD),
		MinStayNights: 1,
		MaxGuests:     4,
		CreatedAt:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, factory.VillaRepo.Save(context.Background(), v))

	outboxStore := memory.NewOutbox()
	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, bookingapp.RequestBookingCommand{}.Key(), &bookingapp.RequestBookingHandler{
		UoWFactory: factory,
		Outbox:     outboxStore,
	})
	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, calendarapp.GetCalendarQuery{}.Key(), &calendarapp.GetCalendarHandler{UoWFactory: factory})

	cmdBus := middleware.ChainCommands(commandBus, middleware.Transaction(factory, nil), middleware.OutboxFlush(outboxStore))
	qryBus := middleware.ChainQueries(queryBus)

	cfg := config.Config{Env: "test", HTTPAddr: ":0"}
	srv := ginserver.NewServer(cfg, obs.Middleware{}, obs.HealthHandlers{}, ginserver.Handlers{
		Booking:  ginserver.BookingHandler{Commands: cmdBus, Queries: qryBus},
		Calendar: ginserver.CalendarHandler{Queries: qryBus, DefaultMonths: 3},
	})
	return srv.Handler
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func bookingBody(checkIn, checkOut string) map[string]any {
	return map[string]any{
		"villa_id":  "villa-1",
		"check_in":  checkIn + "T00:00:00Z",
		"check_out": checkOut + "T00:00:00Z",
		"contact":   map[string]any{"full_name": "Ada Guest"},
		"guests":    []map[string]any{{"full_name": "Ada Guest"}},
	}
}

func TestBookingEndpointConflictResponse(t *testing.T) {
	h := newTestServer(t)

	rec := postJSON(t, h, "/api/v1/bookings", bookingBody("2026-06-10", "2026-06-13"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h, "/api/v1/bookings", bookingBody("2026-06-12", "2026-06-15"))
	require.Equal(t, http.StatusConflict, rec.Code)

	var res struct {
		Admitted  bool `json:"admitted"`
		Conflicts []struct {
			CheckIn string `json:"check_in"`
		} `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Admitted)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "2026-06-10", res.Conflicts[0].CheckIn)
}

func TestCalendarEndpointReturnsGrid(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/villas/villa-1/calendar?from=2026-03-01&months=1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var cal struct {
		Days []struct {
			Date string `json:"date"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cal))
	require.Len(t, cal.Days, 42)
	assert.Equal(t, "2026-02-23", cal.Days[0].Date)
}

func TestCalendarEndpointUnknownVilla(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/villas/missing/calendar", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
