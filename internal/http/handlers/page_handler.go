package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mearajennifer/helper/internal/session"
)

// Landing renders the unauthenticated landing page.
func Landing() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "landing.tmpl", gin.H{
			"flash": session.TakeFlash(c),
		})
	}
}

// LoginChoice renders the role-selection login page.
func LoginChoice() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"flash": session.TakeFlash(c),
		})
	}
}
