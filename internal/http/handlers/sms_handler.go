package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mearajennifer/helper/internal/notify"
)

// SMSReply answers the provider's inbound-message webhook. It is a
// stateless autoresponder: every inbound message, whatever its sender or
// content, gets the same TwiML acknowledgment.
func SMSReply() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte(notify.AttendingReply()))
	}
}
