package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mearajennifer/helper/internal/models"
	"github.com/mearajennifer/helper/internal/session"
	"github.com/mearajennifer/helper/internal/store"
)

// ListOrganizations shows a volunteer every registered organization with a
// joined marker next to the ones they already belong to.
func ListOrganizations(orgs store.OrganizationRepository, memberships store.MembershipRepository) gin.HandlerFunc {
	type row struct {
		Org    models.Organization
		Joined bool
	}
	return func(c *gin.Context) {
		claims := c.MustGet("claims").(*session.Claims)

		all, err := orgs.FindAll(c.Request.Context())
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/home")
			return
		}

		rows := make([]row, 0, len(all))
		for i := range all {
			joined, err := memberships.Exists(c.Request.Context(), all[i].ID, claims.UserID)
			if err != nil {
				c.Redirect(http.StatusSeeOther, "/home")
				return
			}
			rows = append(rows, row{Org: all[i], Joined: joined})
		}

		c.HTML(http.StatusOK, "organizations.tmpl", gin.H{
			"flash":         session.TakeFlash(c),
			"organizations": rows,
		})
	}
}

// JoinOrganization links the current volunteer to an organization. Joining
// one they already belong to is a no-op.
func JoinOrganization(orgs store.OrganizationRepository, memberships store.MembershipRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := c.MustGet("claims").(*session.Claims)

		orgID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || orgID <= 0 {
			session.Flash(c, "That organization does not exist.")
			c.Redirect(http.StatusSeeOther, "/organizations")
			return
		}

		org, err := orgs.FindByID(c.Request.Context(), orgID)
		if err != nil || org == nil {
			session.Flash(c, "That organization does not exist.")
			c.Redirect(http.StatusSeeOther, "/organizations")
			return
		}

		if err := memberships.Link(c.Request.Context(), org.ID, claims.UserID); err != nil {
			session.Flash(c, "Could not join. Please try again.")
			c.Redirect(http.StatusSeeOther, "/organizations")
			return
		}

		session.Flash(c, "You joined "+org.Name+".")
		c.Redirect(http.StatusSeeOther, "/organizations")
	}
}
