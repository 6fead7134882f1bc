package notify

import "github.com/twilio/twilio-go/twiml"

const attendingBody = "Can't wait to see you! Find more info at helper.com."

// AttendingReply builds the TwiML document returned to every inbound SMS.
// The autoresponder is stateless: the reply is the same regardless of
// sender or content.
func AttendingReply() string {
	doc, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: attendingBody},
	})
	if err != nil {
		// The document is static; building it cannot fail at runtime.
		return attendingBody
	}
	return doc
}
