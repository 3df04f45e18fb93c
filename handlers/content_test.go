package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"porchly/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/catalog", GetCatalogHandler)
	r.GET("/api/content/home", GetHomeContentHandler)
	r.GET("/api/content/how-it-works", GetHowItWorksHandler)
	r.GET("/api/content/packages", GetPackagesHandler)
	r.GET("/api/content/gallery", GetGalleryHandler)
	r.GET("/api/content/contact-info", GetContactInfoHandler)
	return r
}

func TestGetCatalogEndpoint(t *testing.T) {
	r := newContentRouter()
	w := doJSON(t, r, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Packages        []models.Package       `json:"packages"`
		AddOns          []models.AddOn         `json:"addOns"`
		DeliveryZones   []models.DeliveryZone  `json:"deliveryZones"`
		DeliveryWeeks   []models.CatalogOption `json:"deliveryWeeks"`
		RemovalWeeks    []models.CatalogOption `json:"removalWeeks"`
		TimePreferences []models.CatalogOption `json:"timePreferences"`
		ReferralSources []models.CatalogOption `json:"referralSources"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Packages, 5)
	assert.Len(t, resp.AddOns, 4)
	assert.Len(t, resp.DeliveryZones, 3)
	assert.Len(t, resp.DeliveryWeeks, 5)
	assert.Len(t, resp.RemovalWeeks, 3)
	assert.Len(t, resp.TimePreferences, 3)
	assert.NotEmpty(t, resp.ReferralSources)
}

func TestContentEndpointsRespond(t *testing.T) {
	r := newContentRouter()
	for _, path := range []string{
		"/api/content/home",
		"/api/content/how-it-works",
		"/api/content/packages",
		"/api/content/gallery",
		"/api/content/contact-info",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Body.Bytes(), path)
	}
}
