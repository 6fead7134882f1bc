package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mearajennifer/helper/internal/auth"
	"github.com/mearajennifer/helper/internal/session"
	"github.com/mearajennifer/helper/internal/store"
)

// ShowVolunteerRegister renders the volunteer registration form.
func ShowVolunteerRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register-volunteer.tmpl", gin.H{
			"flash": session.TakeFlash(c),
		})
	}
}

// RegisterVolunteer creates a volunteer account from the submitted form.
func RegisterVolunteer(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Name        string `form:"name" binding:"required"`
			Email       string `form:"email" binding:"required,email"`
			PhoneNumber string `form:"phone_number"`
			Password    string `form:"password" binding:"required"`
		}
		if err := c.ShouldBind(&in); err != nil {
			session.Flash(c, "Please fill in your name, email, and password.")
			c.Redirect(http.StatusSeeOther, "/register/volunteer")
			return
		}

		_, err := svc.RegisterVolunteer(c.Request.Context(), auth.VolunteerInput{
			Name:        in.Name,
			Email:       in.Email,
			PhoneNumber: in.PhoneNumber,
			Password:    in.Password,
		})
		if errors.Is(err, auth.ErrEmailTaken) {
			session.Flash(c, "An account already exists with that email address.")
			c.Redirect(http.StatusSeeOther, "/register/volunteer")
			return
		}
		if err != nil {
			session.Flash(c, "Registration failed. Please try again.")
			c.Redirect(http.StatusSeeOther, "/register/volunteer")
			return
		}

		session.Flash(c, "Thanks for registering. Please login.")
		c.Redirect(http.StatusSeeOther, "/login/volunteer")
	}
}

// ShowVolunteerLogin renders the volunteer sign-in form.
func ShowVolunteerLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login-volunteer.tmpl", gin.H{
			"flash": session.TakeFlash(c),
		})
	}
}

// LoginVolunteer verifies the volunteer's email and password and
// establishes a session.
func LoginVolunteer(svc *auth.Service, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Email    string `form:"email" binding:"required"`
			Password string `form:"password" binding:"required"`
		}
		if err := c.ShouldBind(&in); err != nil {
			session.Flash(c, "Please enter your email and password.")
			c.Redirect(http.StatusSeeOther, "/login/volunteer")
			return
		}

		volunteer, err := svc.LoginVolunteer(c.Request.Context(), in.Email, in.Password)
		if errors.Is(err, auth.ErrNoSuchUser) {
			session.Flash(c, "No user exists with that email address.")
			c.Redirect(http.StatusSeeOther, "/login/volunteer")
			return
		}
		if errors.Is(err, auth.ErrBadPassword) {
			session.Flash(c, "Incorrect password for the email address entered.")
			c.Redirect(http.StatusSeeOther, "/login/volunteer")
			return
		}
		if err != nil {
			session.Flash(c, "Login failed. Please try again.")
			c.Redirect(http.StatusSeeOther, "/login/volunteer")
			return
		}

		if err := sessions.Issue(c, volunteer.ID, session.RoleVolunteer); err != nil {
			session.Flash(c, "Login failed. Please try again.")
			c.Redirect(http.StatusSeeOther, "/login/volunteer")
			return
		}

		session.Flash(c, "You are now logged in.")
		c.Redirect(http.StatusSeeOther, "/home")
	}
}

// ShowOrganizationRegister renders the organization registration form with
// the category choices.
func ShowOrganizationRegister(categories store.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := categories.FindAll(c.Request.Context())
		if err != nil {
			c.HTML(http.StatusOK, "register-org.tmpl", gin.H{"flash": session.TakeFlash(c)})
			return
		}
		c.HTML(http.StatusOK, "register-org.tmpl", gin.H{
			"flash":      session.TakeFlash(c),
			"categories": all,
		})
	}
}

// RegisterOrganization creates an organization account from the submitted form.
func RegisterOrganization(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Name        string `form:"name" binding:"required"`
			Email       string `form:"email" binding:"required,email"`
			Password    string `form:"password" binding:"required"`
			Address     string `form:"address"`
			Category    string `form:"category"`
			Description string `form:"description"`
			Website     string `form:"website"`
		}
		if err := c.ShouldBind(&in); err != nil {
			session.Flash(c, "Please fill in your organization name, email, and password.")
			c.Redirect(http.StatusSeeOther, "/register/organization")
			return
		}

		_, err := svc.RegisterOrganization(c.Request.Context(), auth.OrganizationInput{
			Name:        in.Name,
			Email:       in.Email,
			Password:    in.Password,
			Address:     in.Address,
			Category:    in.Category,
			Description: in.Description,
			Website:     in.Website,
		})
		if errors.Is(err, auth.ErrEmailTaken) {
			session.Flash(c, "An account already exists with that email address.")
			c.Redirect(http.StatusSeeOther, "/register/organization")
			return
		}
		if err != nil {
			session.Flash(c, "Registration failed. Please try again.")
			c.Redirect(http.StatusSeeOther, "/register/organization")
			return
		}

		session.Flash(c, "Thanks for registering. Please login.")
		c.Redirect(http.StatusSeeOther, "/login/organization")
	}
}

// ShowOrganizationLogin renders the organization sign-in form.
func ShowOrganizationLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login-org.tmpl", gin.H{
			"flash": session.TakeFlash(c),
		})
	}
}

// LoginOrganization verifies the organization's email and password and
// establishes a session.
func LoginOrganization(svc *auth.Service, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Email    string `form:"email" binding:"required"`
			Password string `form:"password" binding:"required"`
		}
		if err := c.ShouldBind(&in); err != nil {
			session.Flash(c, "Please enter your email and password.")
			c.Redirect(http.StatusSeeOther, "/login/organization")
			return
		}

		org, err := svc.LoginOrganization(c.Request.Context(), in.Email, in.Password)
		if errors.Is(err, auth.ErrNoSuchUser) {
			session.Flash(c, "No organization exists with that email address.")
			c.Redirect(http.StatusSeeOther, "/login/organization")
			return
		}
		if errors.Is(err, auth.ErrBadPassword) {
			session.Flash(c, "Incorrect password for the email address entered.")
			c.Redirect(http.StatusSeeOther, "/login/organization")
			return
		}
		if err != nil {
			session.Flash(c, "Login failed. Please try again.")
			c.Redirect(http.StatusSeeOther, "/login/organization")
			return
		}

		if err := sessions.Issue(c, org.ID, session.RoleOrganization); err != nil {
			session.Flash(c, "Login failed. Please try again.")
			c.Redirect(http.StatusSeeOther, "/login/organization")
			return
		}

		session.Flash(c, "You are now logged in.")
		c.Redirect(http.StatusSeeOther, "/home")
	}
}

// Logout clears the session cookie and redirects to the landing page.
func Logout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Clear(c); errors.Is(err, session.ErrNotLoggedIn) {
			session.Flash(c, "You are not logged in.")
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		session.Flash(c, "Logged out.")
		c.Redirect(http.StatusSeeOther, "/")
	}
}
