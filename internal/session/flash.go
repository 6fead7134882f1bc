package session

import "github.com/gin-gonic/gin"

const flashCookie = "flash"

// Flash stores a one-shot message shown on the next rendered page.
func Flash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 300, "/", "", false, true)
}

// TakeFlash returns the pending flash message, if any, and clears it.
func TakeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}
