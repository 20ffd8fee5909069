package v1

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdialloC19/backend-IPDL/internal/infrastructure/realtime"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/token"
)

// Registering every domain router against one engine exercises the full
// route tree, which gin validates eagerly and panics on conflicts.
func TestRegisterRoutesMountsEveryDomain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	require.NotPanics(t, func() {
		RegisterRoutes(r, Deps{
			Hub:    realtime.NewHub(nil),
			Issuer: token.NewIssuer("test-secret", time.Hour),
		})
	})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/v1/users/register",
		"POST /api/v1/users/login",
		"POST /api/v1/users/verifyOtp",
		"GET /api/v1/users/getUser/:id",
		"GET /api/v1/conversation/rooms/:roomId/messages",
		"GET /api/v1/conversation/ws",
		"POST /api/v1/itineraries",
		"GET /api/v1/itineraries/id/:itineraryId",
		"PATCH /api/v1/itineraries/addPassenger",
		"POST /api/v1/projects",
		"GET /api/v1/projects/id/:projectId",
		"POST /api/v1/projects/tasks/:taskId/comments",
		"POST /api/v1/reviews",
		"GET /api/v1/reviews/user/:userId",
		"POST /api/v1/routetracks",
		"GET /api/v1/routetracks/:routeId",
		"POST /api/v1/sms",
	} {
		assert.True(t, registered[want], want)
	}

	assert.False(t, registered["GET /api/v1/conversations/rooms/:roomId/messages"])
}
