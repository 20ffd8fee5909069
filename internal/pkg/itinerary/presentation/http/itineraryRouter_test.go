package http

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutesBuildsRouteTree(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	require.NotPanics(t, func() {
		RegisterRoutes(r.Group("/itineraries"), nil)
	})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /itineraries",
		"GET /itineraries/id/:itineraryId",
		"GET /itineraries/driver/:driverId",
		"GET /itineraries/passenger/:passengerId",
		"PATCH /itineraries/addPassenger",
		"PATCH /itineraries/removePassenger",
		"PATCH /itineraries/addStopover",
		"PATCH /itineraries/removeStopover",
		"PATCH /itineraries/complete",
		"PATCH /itineraries/cancel",
	} {
		assert.True(t, registered[want], want)
	}
}
