package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mearajennifer/helper/internal/alert"
	"github.com/mearajennifer/helper/internal/auth"
	"github.com/mearajennifer/helper/internal/http/handlers"
	"github.com/mearajennifer/helper/internal/session"
	"github.com/mearajennifer/helper/internal/store"
	"github.com/mearajennifer/helper/internal/ui"
)

// Deps carries everything the routes need. Tests wire it with in-memory
// repositories and a fake sender.
type Deps struct {
	Volunteers    store.VolunteerRepository
	Organizations store.OrganizationRepository
	Categories    store.CategoryRepository
	Memberships   store.MembershipRepository
	Sessions      *session.Manager
	Auth          *auth.Service
	Alerts        *alert.Service
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(ui.Templates())

	// favicon fix
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	r.GET("/", handlers.Landing())
	r.GET("/login", handlers.LoginChoice())

	r.GET("/register/volunteer", handlers.ShowVolunteerRegister())
	r.POST("/register/volunteer", handlers.RegisterVolunteer(deps.Auth))
	r.GET("/login/volunteer", handlers.ShowVolunteerLogin())
	r.POST("/login/volunteer", handlers.LoginVolunteer(deps.Auth, deps.Sessions))

	r.GET("/register/organization", handlers.ShowOrganizationRegister(deps.Categories))
	r.POST("/register/organization", handlers.RegisterOrganization(deps.Auth))
	r.GET("/login/organization", handlers.ShowOrganizationLogin())
	r.POST("/login/organization", handlers.LoginOrganization(deps.Auth, deps.Sessions))

	r.GET("/home", handlers.Home(deps.Sessions, deps.Volunteers, deps.Organizations))
	r.GET("/logout", handlers.Logout(deps.Sessions))

	// Organization-only alert flow
	orgOnly := deps.Sessions.Require(session.RoleOrganization)
	r.GET("/create-alert", orgOnly, handlers.ShowAlertForm())
	r.POST("/create-alert", orgOnly, handlers.CreateAlert(deps.Alerts))

	// Volunteer-only browse/join flow
	volOnly := deps.Sessions.Require(session.RoleVolunteer)
	r.GET("/organizations", volOnly, handlers.ListOrganizations(deps.Organizations, deps.Memberships))
	r.POST("/organizations/:id/join", volOnly, handlers.JoinOrganization(deps.Organizations, deps.Memberships))

	// Inbound SMS webhook (the provider calls this)
	r.GET("/sms", handlers.SMSReply())
	r.POST("/sms", handlers.SMSReply())

	return r
}
