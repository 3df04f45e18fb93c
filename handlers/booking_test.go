package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookingRepo "porchly/database/repository/booking"
	"porchly/models"
	"porchly/services/booking"
	"porchly/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sessionBody struct {
	SessionID string                      `json:"sessionId"`
	Status    string                      `json:"status"`
	Config    models.BookingConfiguration `json:"config"`
	Quote     models.PriceQuote           `json:"quote"`
}

func newFunnelRouter() (*gin.Engine, *payment.SimulatedGateway, bookingRepo.BookingRepository) {
	gin.SetMode(gin.TestMode)

	gateway := payment.NewSimulatedGateway(zap.NewNop())
	gateway.Delay = time.Millisecond
	repo := bookingRepo.NewMemoryBookingRepo()
	svc := &booking.DefaultBookingSessionService{
		Store:    booking.NewMemorySessionStore(),
		Payments: gateway,
		Repo:     repo,
		Logger:   zap.NewNop(),
	}
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/booking/session", h.InitiateSession)
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.PATCH("/api/booking/session/:sessionID", h.UpdateSession)
	r.POST("/api/booking/session/:sessionID/confirm", h.ConfirmBooking)
	r.DELETE("/api/booking/session/:sessionID", h.CancelSession)
	return r, gateway, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, r *gin.Engine) sessionBody {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp sessionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func patchSession(t *testing.T, r *gin.Engine, sessionID string, update models.SessionUpdate) sessionBody {
	t.Helper()
	w := doJSON(t, r, http.MethodPatch, "/api/booking/session/"+sessionID, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp sessionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func fillSubmittable(t *testing.T, r *gin.Engine, sessionID string) {
	t.Helper()
	for _, u := range []models.SessionUpdate{
		{Op: models.OpSetPackage, ID: "deluxe"},
		{Op: models.OpSetDeliveryZone, ID: "standard"},
		{Op: models.OpToggleAddOn, ID: "haybale"},
		{Op: models.OpSetHaybaleQuantity, Quantity: 3},
		{Op: models.OpSetField, Field: "name", Value: "Remy Broussard"},
		{Op: models.OpSetField, Field: "email", Value: "remy@example.com"},
		{Op: models.OpSetField, Field: "phone", Value: "225-555-0101"},
		{Op: models.OpSetField, Field: "address", Value: "123 Oak St"},
		{Op: models.OpSetField, Field: "city", Value: "denham-springs"},
		{Op: models.OpSetField, Field: "deliveryWeek", Value: "oct-week2"},
	} {
		patchSession(t, r, sessionID, u)
	}
}

func TestInitiateSessionEndpoint(t *testing.T) {
	r, _, _ := newFunnelRouter()
	resp := startSession(t, r)

	assert.Equal(t, models.SessionOpen, resp.Status)
	assert.Equal(t, "mini", resp.Config.PackageID)
	assert.Equal(t, 325, resp.Quote.Total)
}

func TestBookingFunnelEndToEnd(t *testing.T) {
	r, _, repo := newFunnelRouter()
	session := startSession(t, r)
	fillSubmittable(t, r, session.SessionID)

	updated := patchSession(t, r, session.SessionID, models.SessionUpdate{Op: models.OpSetPackage, ID: "deluxe"})
	assert.Equal(t, 930, updated.Quote.Total)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session/"+session.SessionID+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var confirmResp struct {
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmResp))
	assert.Equal(t, models.BookingConfirmed, confirmResp.Booking.Status)
	assert.Equal(t, 930, confirmResp.Booking.Quote.Total)
	assert.NotEmpty(t, confirmResp.Booking.ReceiptID)

	stored, err := repo.GetByID(context.Background(), confirmResp.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 930, stored.Quote.Total)

	// The session is gone once the booking is confirmed.
	w = doJSON(t, r, http.MethodGet, "/api/booking/session/"+session.SessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSessionUnknownCatalogID(t *testing.T) {
	r, _, _ := newFunnelRouter()
	session := startSession(t, r)

	w := doJSON(t, r, http.MethodPatch, "/api/booking/session/"+session.SessionID,
		models.SessionUpdate{Op: models.OpSetPackage, ID: "mega"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "unknown catalog id")
}

func TestUpdateSessionMissingOp(t *testing.T) {
	r, _, _ := newFunnelRouter()
	session := startSession(t, r)

	w := doJSON(t, r, http.MethodPatch, "/api/booking/session/"+session.SessionID, gin.H{"id": "deluxe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmValidationBlocked(t *testing.T) {
	r, _, _ := newFunnelRouter()
	session := startSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session/"+session.SessionID+"/confirm", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConfirmPaymentDeclinedVerbatim(t *testing.T) {
	r, gateway, _ := newFunnelRouter()
	session := startSession(t, r)
	fillSubmittable(t, r, session.SessionID)

	gateway.FailWith("card declined: expired card")
	w := doJSON(t, r, http.MethodPost, "/api/booking/session/"+session.SessionID+"/confirm", nil)
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	var errResp struct {
		Message string `json:"message"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "card declined: expired card", errResp.Details)

	// The session reopens with the configuration intact.
	w = doJSON(t, r, http.MethodGet, "/api/booking/session/"+session.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp sessionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.SessionOpen, resp.Status)
	assert.Equal(t, 930, resp.Quote.Total)
}

func TestGetSessionNotFoundEndpoint(t *testing.T) {
	r, _, _ := newFunnelRouter()
	w := doJSON(t, r, http.MethodGet, "/api/booking/session/no-such-session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelSessionEndpoint(t *testing.T) {
	r, _, _ := newFunnelRouter()
	session := startSession(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/booking/session/"+session.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/booking/session/"+session.SessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
