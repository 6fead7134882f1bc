package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mearajennifer/helper/internal/session"
	"github.com/mearajennifer/helper/internal/store"
)

// Home renders the role-gated dashboard: volunteers see the organizations
// they belong to, organizations see their linked volunteers. Anonymous
// visitors are sent back to the landing page.
func Home(sessions *session.Manager, volunteers store.VolunteerRepository, orgs store.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessions.Current(c)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		switch claims.Role {
		case session.RoleVolunteer:
			volunteer, err := volunteers.FindByID(c.Request.Context(), claims.UserID)
			if err != nil || volunteer == nil {
				c.Redirect(http.StatusSeeOther, "/")
				return
			}
			linked, err := orgs.FindByVolunteer(c.Request.Context(), volunteer.ID)
			if err != nil {
				c.Redirect(http.StatusSeeOther, "/")
				return
			}
			c.HTML(http.StatusOK, "home-volunteer.tmpl", gin.H{
				"flash":         session.TakeFlash(c),
				"volunteer":     volunteer,
				"organizations": linked,
			})

		case session.RoleOrganization:
			org, err := orgs.FindByID(c.Request.Context(), claims.UserID)
			if err != nil || org == nil {
				c.Redirect(http.StatusSeeOther, "/")
				return
			}
			linked, err := volunteers.FindByOrganization(c.Request.Context(), org.ID)
			if err != nil {
				c.Redirect(http.StatusSeeOther, "/")
				return
			}
			c.HTML(http.StatusOK, "home-organization.tmpl", gin.H{
				"flash":        session.TakeFlash(c),
				"organization": org,
				"volunteers":   linked,
			})

		default:
			c.Redirect(http.StatusSeeOther, "/")
		}
	}
}
