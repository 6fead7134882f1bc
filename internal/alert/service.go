package alert

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mearajennifer/helper/internal/notify"
	"github.com/mearajennifer/helper/internal/store"
)

const maxConcurrentSends = 8

// Request carries the alert parameters submitted by an organization.
type Request struct {
	NumVolunteers int
	Day           string
	Hours         string
	AMPM          string
}

// Result summarizes one broadcast. Failures never abort the batch; every
// resolved recipient gets a send attempt.
type Result struct {
	Recipients int
	Sent       int
	Failures   []*notify.DeliveryError
}

type Service struct {
	orgs       store.OrganizationRepository
	volunteers store.VolunteerRepository
	sender     notify.Sender
}

func NewService(orgs store.OrganizationRepository, volunteers store.VolunteerRepository, sender notify.Sender) *Service {
	return &Service{orgs: orgs, volunteers: volunteers, sender: sender}
}

// Compose builds the outbound message body for an alert.
func Compose(orgName string, req Request) string {
	displayTime := req.Hours + " " + req.AMPM
	return fmt.Sprintf("Helper request: %s needs %d volunteers %s at %s. Can you help? Reply YES.",
		orgName, req.NumVolunteers, req.Day, displayTime)
}

// Broadcast resolves the organization's linked volunteers, projects to
// their phone numbers (skipping volunteers without one), and fans the
// composed message out to each of them.
func (s *Service) Broadcast(ctx context.Context, orgID int64, req Request) (*Result, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, fmt.Errorf("organization %d not found", orgID)
	}

	volunteers, err := s.volunteers.FindByOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	var phoneNumbers []string
	for _, volunteer := range volunteers {
		if volunteer.PhoneNumber == "" {
			continue
		}
		phoneNumbers = append(phoneNumbers, volunteer.PhoneNumber)
	}

	body := Compose(org.Name, req)
	result := &Result{Recipients: len(phoneNumbers)}

	// Sends are independent; run them with bounded concurrency and isolate
	// each recipient's failure so one provider error cannot strand the rest.
	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentSends)
	for _, to := range phoneNumbers {
		to := to
		g.Go(func() error {
			sid, err := s.sender.Send(ctx, to, body)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				delivery := &notify.DeliveryError{To: to, Err: err}
				if de, ok := err.(*notify.DeliveryError); ok {
					delivery = de
				}
				result.Failures = append(result.Failures, delivery)
				log.Printf("⚠️ SMS to %s failed: %v", to, err)
				return nil
			}
			result.Sent++
			log.Printf("📨 SMS sent to %s (sid=%s)", to, sid)
			return nil
		})
	}
	g.Wait()

	return result, nil
}
