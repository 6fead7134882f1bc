package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mearajennifer/helper/internal/alert"
	"github.com/mearajennifer/helper/internal/session"
)

// ShowAlertForm renders the alert creation form. Role gating happens in
// the session middleware.
func ShowAlertForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "create-alert.tmpl", gin.H{
			"flash": session.TakeFlash(c),
		})
	}
}

// CreateAlert reads the alert parameters, broadcasts the composed message
// to the organization's linked volunteers, and redirects home with a
// summary. Individual delivery failures never abort the batch.
func CreateAlert(alerts *alert.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := c.MustGet("claims").(*session.Claims)

		var in struct {
			NumVolunteers int    `form:"num_volunteers" binding:"required,gt=0"`
			Day           string `form:"day" binding:"required"`
			Hours         string `form:"hours" binding:"required"`
			AMPM          string `form:"ampm" binding:"required"`
		}
		if err := c.ShouldBind(&in); err != nil {
			session.Flash(c, "Please fill in how many volunteers you need, the day, and the time.")
			c.Redirect(http.StatusSeeOther, "/create-alert")
			return
		}

		result, err := alerts.Broadcast(c.Request.Context(), claims.UserID, alert.Request{
			NumVolunteers: in.NumVolunteers,
			Day:           in.Day,
			Hours:         in.Hours,
			AMPM:          in.AMPM,
		})
		if err != nil {
			session.Flash(c, "Could not send your request. Please try again.")
			c.Redirect(http.StatusSeeOther, "/create-alert")
			return
		}

		if len(result.Failures) > 0 {
			session.Flash(c, fmt.Sprintf("Your request for volunteers was sent to %d of %d volunteers.",
				result.Sent, result.Recipients))
		} else {
			session.Flash(c, "Your request for volunteers was sent!")
		}
		c.Redirect(http.StatusSeeOther, "/home")
	}
}
