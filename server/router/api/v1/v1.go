// Package v1 implements the REST API consumed by the web client.
package v1

import (
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/semaphore"

	"github.com/hublie/hublie/internal/profile"
	"github.com/hublie/hublie/plugin/ai"
	"github.com/hublie/hublie/plugin/markdown"
	"github.com/hublie/hublie/server/middleware"
	"github.com/hublie/hublie/server/service/gating"
	"github.com/hublie/hublie/server/service/points"
	"github.com/hublie/hublie/store"
)

type APIV1Service struct {
	Profile *profile.Profile
	Store   *store.Store

	GatingService   *gating.Service
	PointsService   *points.Service
	MarkdownService markdown.Service
	AIProvider      *ai.Provider

	parseLimiter *middleware.RateLimiter
	aiLimiter    *middleware.RateLimiter
	// composeSemaphore bounds concurrent upstream AI calls.
	composeSemaphore *semaphore.Weighted
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	service := &APIV1Service{
		Profile:          profile,
		Store:            store,
		GatingService:    gating.NewService(store),
		PointsService:    points.NewService(store),
		MarkdownService:  markdown.NewService(),
		parseLimiter:     middleware.NewRateLimiter(time.Second/10, 20),
		aiLimiter:        middleware.NewRateLimiter(2*time.Second, 5),
		composeSemaphore: semaphore.NewWeighted(3),
	}

	if profile.IsAIEnabled() {
		provider, err := ai.NewProvider(&ai.Config{
			BaseURL:   profile.AIBaseURL,
			APIKey:    profile.AIAPIKey,
			ChatModel: profile.AIModel,
		})
		if err == nil {
			service.AIProvider = provider
		}
	}

	return service
}

// RegisterRoutes registers all REST routes on the given echo instance.
func (s *APIV1Service) RegisterRoutes(echoServer *echo.Echo) {
	apiGroup := echoServer.Group("/api/v1")

	apiGroup.POST("/parse-event", s.ParseEvent, s.parseLimiter.Middleware())

	apiGroup.POST("/households", s.CreateHousehold)
	apiGroup.GET("/households/:householdUid", s.GetHousehold)
	apiGroup.PATCH("/households/:householdUid", s.UpdateHousehold)
	apiGroup.DELETE("/households/:householdUid", s.DeleteHousehold)
	apiGroup.GET("/households/:householdUid/dashboard", s.GetDashboard)
	apiGroup.GET("/households/:householdUid/activities", s.ListActivities)
	apiGroup.GET("/households/:householdUid/calendar.ics", s.ExportCalendar)

	apiGroup.POST("/households/:householdUid/members", s.CreateMember)
	apiGroup.GET("/households/:householdUid/members", s.ListMembers)
	apiGroup.PATCH("/households/:householdUid/members/:memberUid", s.UpdateMember)
	apiGroup.DELETE("/households/:householdUid/members/:memberUid", s.DeleteMember)

	apiGroup.POST("/households/:householdUid/caregiver-accesses", s.CreateCaregiverAccess)
	apiGroup.GET("/households/:householdUid/caregiver-accesses", s.ListCaregiverAccesses)
	apiGroup.POST("/households/:householdUid/caregiver-accesses/verify", s.VerifyCaregiverCode)
	apiGroup.DELETE("/households/:householdUid/caregiver-accesses/:accessId", s.DeleteCaregiverAccess)

	apiGroup.POST("/households/:householdUid/chores", s.CreateChore)
	apiGroup.GET("/households/:householdUid/chores", s.ListChores)
	apiGroup.PATCH("/households/:householdUid/chores/:choreUid", s.UpdateChore)
	apiGroup.DELETE("/households/:householdUid/chores/:choreUid", s.DeleteChore)
	apiGroup.POST("/households/:householdUid/chores/:choreUid/complete", s.CompleteChore)

	apiGroup.POST("/households/:householdUid/bills", s.CreateBill)
	apiGroup.GET("/households/:householdUid/bills", s.ListBills)
	apiGroup.PATCH("/households/:householdUid/bills/:billUid", s.UpdateBill)
	apiGroup.DELETE("/households/:householdUid/bills/:billUid", s.DeleteBill)
	apiGroup.POST("/households/:householdUid/bills/:billUid/pay", s.PayBill)

	apiGroup.POST("/households/:householdUid/notes", s.CreateNote)
	apiGroup.GET("/households/:householdUid/notes", s.ListNotes)
	apiGroup.PATCH("/households/:householdUid/notes/:noteUid", s.UpdateNote)
	apiGroup.DELETE("/households/:householdUid/notes/:noteUid", s.DeleteNote)

	apiGroup.POST("/households/:householdUid/events", s.CreateCalendarEvent)
	apiGroup.GET("/households/:householdUid/events", s.ListCalendarEvents)
	apiGroup.PATCH("/households/:householdUid/events/:eventUid", s.UpdateCalendarEvent)
	apiGroup.DELETE("/households/:householdUid/events/:eventUid", s.DeleteCalendarEvent)
	apiGroup.POST("/households/:householdUid/events/parse", s.CreateEventFromPhrase, s.parseLimiter.Middleware())

	apiGroup.POST("/households/:householdUid/nominations", s.CreateMVPNomination)
	apiGroup.GET("/households/:householdUid/leaderboard", s.GetLeaderboard)
	apiGroup.GET("/households/:householdUid/mvp", s.GetWeeklyMVP)

	apiGroup.GET("/households/:householdUid/subscription", s.GetSubscription)
	apiGroup.PUT("/households/:householdUid/subscription", s.UpdateSubscription)

	apiGroup.POST("/households/:householdUid/ai/compose", s.Compose, s.aiLimiter.Middleware())
}
