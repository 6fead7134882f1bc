package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mearajennifer/helper/internal/alert"
	"github.com/mearajennifer/helper/internal/auth"
	"github.com/mearajennifer/helper/internal/models"
	"github.com/mearajennifer/helper/internal/notify"
	"github.com/mearajennifer/helper/internal/session"
	"github.com/mearajennifer/helper/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSender struct {
	mutex   sync.Mutex
	sent    []string
	failFor map[string]bool
}

func (f *fakeSender) Send(_ context.Context, to, _ string) (string, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.sent = append(f.sent, to)
	if f.failFor[to] {
		return "", errors.New("provider unavailable")
	}
	return "SM0001", nil
}

func (f *fakeSender) count() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return len(f.sent)
}

var _ notify.Sender = (*fakeSender)(nil)

type testEnv struct {
	router      *gin.Engine
	sender      *fakeSender
	volunteers  store.VolunteerRepository
	orgs        store.OrganizationRepository
	memberships store.MembershipRepository
	authSvc     *auth.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	volunteers, orgs, categories, memberships := store.NewInMemory()
	categories.Add("Community")

	sender := &fakeSender{failFor: map[string]bool{}}
	authSvc := auth.NewService(volunteers, orgs, categories)
	sessions := session.NewManager("test-secret")

	router := NewRouter(Deps{
		Volunteers:    volunteers,
		Organizations: orgs,
		Categories:    categories,
		Memberships:   memberships,
		Sessions:      sessions,
		Auth:          authSvc,
		Alerts:        alert.NewService(orgs, volunteers, sender),
	})

	return &testEnv{
		router:      router,
		sender:      sender,
		volunteers:  volunteers,
		orgs:        orgs,
		memberships: memberships,
		authSvc:     authSvc,
	}
}

// browser is a minimal cookie jar across requests.
type browser struct {
	cookies map[string]*http.Cookie
}

func newBrowser() *browser { return &browser{cookies: map[string]*http.Cookie{}} }

func (b *browser) do(t *testing.T, r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(b.cookies, cookie.Name)
			continue
		}
		b.cookies[cookie.Name] = cookie
	}
	return w
}

func registerAndLoginOrg(t *testing.T, env *testEnv, b *browser) {
	t.Helper()

	w := b.do(t, env.router, http.MethodPost, "/register/organization", url.Values{
		"name": {"Acme"}, "email": {"a@x.com"}, "password": {"p"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login/organization", w.Header().Get("Location"))

	w = b.do(t, env.router, http.MethodPost, "/login/organization", url.Values{
		"email": {"a@x.com"}, "password": {"p"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/home", w.Header().Get("Location"))
	require.Contains(t, b.cookies, "session")
}

func linkVolunteer(t *testing.T, env *testEnv, name, email, phone string) *models.Volunteer {
	t.Helper()
	ctx := context.Background()

	volunteer, err := env.authSvc.RegisterVolunteer(ctx, auth.VolunteerInput{
		Name: name, Email: email, PhoneNumber: phone, Password: "p",
	})
	require.NoError(t, err)

	org, err := env.orgs.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, org)
	require.NoError(t, env.memberships.Link(ctx, org.ID, volunteer.ID))
	return volunteer
}

func TestOrganizationEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	registerAndLoginOrg(t, env, b)

	// Home shows the organization with an empty volunteer list.
	home := b.do(t, env.router, http.MethodGet, "/home", nil)
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "Acme")
	assert.Contains(t, home.Body.String(), "No volunteers have joined yet.")

	// After a volunteer joins, home lists them.
	linkVolunteer(t, env, "Jane", "jane@example.com", "+15105550100")
	home = b.do(t, env.router, http.MethodGet, "/home", nil)
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "Jane")
}

func TestHomeAnonymousRedirects(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	w := b.do(t, env.router, http.MethodGet, "/home", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestCreateAlertRequiresOrganization(t *testing.T) {
	env := newTestEnv(t)

	// Anonymous visitor.
	anon := newBrowser()
	w := anon.do(t, env.router, http.MethodGet, "/create-alert", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))

	// Logged-in volunteer.
	vol := newBrowser()
	_, err := env.authSvc.RegisterVolunteer(context.Background(), auth.VolunteerInput{
		Name: "Jane", Email: "jane@example.com", Password: "p",
	})
	require.NoError(t, err)
	login := vol.do(t, env.router, http.MethodPost, "/login/volunteer", url.Values{
		"email": {"jane@example.com"}, "password": {"p"},
	})
	require.Equal(t, "/home", login.Header().Get("Location"))

	w = vol.do(t, env.router, http.MethodPost, "/create-alert", url.Values{
		"num_volunteers": {"2"}, "day": {"Friday"}, "hours": {"3"}, "ampm": {"PM"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	assert.Zero(t, env.sender.count(), "no messages may be sent for a non-organization actor")
}

func TestCreateAlertBroadcasts(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	registerAndLoginOrg(t, env, b)
	linkVolunteer(t, env, "A", "a@example.com", "+15105550101")
	linkVolunteer(t, env, "B", "b@example.com", "+15105550102")
	linkVolunteer(t, env, "No Phone", "np@example.com", "")

	w := b.do(t, env.router, http.MethodPost, "/create-alert", url.Values{
		"num_volunteers": {"2"}, "day": {"Saturday"}, "hours": {"3"}, "ampm": {"PM"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	assert.Equal(t, 2, env.sender.count(), "volunteers without a phone number are skipped")
}

func TestCreateAlertSurvivesDeliveryFailure(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	registerAndLoginOrg(t, env, b)
	linkVolunteer(t, env, "A", "a@example.com", "+15105550101")
	linkVolunteer(t, env, "B", "b@example.com", "+15105550102")
	env.sender.failFor["+15105550101"] = true

	w := b.do(t, env.router, http.MethodPost, "/create-alert", url.Values{
		"num_volunteers": {"1"}, "day": {"today"}, "hours": {"6"}, "ampm": {"PM"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	assert.Equal(t, 2, env.sender.count(), "both attempts must be made despite the failure")
}

func TestCreateAlertValidation(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	registerAndLoginOrg(t, env, b)

	// Missing day, zero volunteers: rejected, nothing sent.
	w := b.do(t, env.router, http.MethodPost, "/create-alert", url.Values{
		"num_volunteers": {"0"}, "hours": {"3"}, "ampm": {"PM"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/create-alert", w.Header().Get("Location"))
	assert.Zero(t, env.sender.count())
}

func TestRegisterVolunteerValidation(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	w := b.do(t, env.router, http.MethodPost, "/register/volunteer", url.Values{
		"name": {"Jane"}, "password": {"p"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register/volunteer", w.Header().Get("Location"))
}

func TestVolunteerJoinFlow(t *testing.T) {
	env := newTestEnv(t)

	// Seed an organization to join.
	orgBrowser := newBrowser()
	registerAndLoginOrg(t, env, orgBrowser)

	b := newBrowser()
	w := b.do(t, env.router, http.MethodPost, "/register/volunteer", url.Values{
		"name": {"Jane"}, "email": {"jane@example.com"}, "phone_number": {"+15105550100"}, "password": {"p"},
	})
	require.Equal(t, "/login/volunteer", w.Header().Get("Location"))

	w = b.do(t, env.router, http.MethodPost, "/login/volunteer", url.Values{
		"email": {"jane@example.com"}, "password": {"p"},
	})
	require.Equal(t, "/home", w.Header().Get("Location"))

	// Browse and join.
	list := b.do(t, env.router, http.MethodGet, "/organizations", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Acme")

	org, err := env.orgs.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	join := b.do(t, env.router, http.MethodPost, "/organizations/"+itoa(org.ID)+"/join", url.Values{})
	require.Equal(t, http.StatusSeeOther, join.Code)

	// Joining again is a no-op.
	again := b.do(t, env.router, http.MethodPost, "/organizations/"+itoa(org.ID)+"/join", url.Values{})
	require.Equal(t, http.StatusSeeOther, again.Code)

	// Home now lists the joined organization exactly once.
	home := b.do(t, env.router, http.MethodGet, "/home", nil)
	require.Equal(t, http.StatusOK, home.Code)
	assert.Equal(t, 1, strings.Count(home.Body.String(), "Acme"))
}

func TestSMSWebhookFixedReply(t *testing.T) {
	env := newTestEnv(t)
	b := newBrowser()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		w := b.do(t, env.router, method, "/sms", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")
		assert.Contains(t, w.Body.String(), "<Message>")
		assert.Contains(t, w.Body.String(), "Find more info at helper.com.")
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	// Without a session: flash, no fault.
	anon := newBrowser()
	w := anon.do(t, env.router, http.MethodGet, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// With a session: the cookie is cleared and /home becomes anonymous.
	b := newBrowser()
	registerAndLoginOrg(t, env, b)
	w = b.do(t, env.router, http.MethodGet, "/logout", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	home := b.do(t, env.router, http.MethodGet, "/home", nil)
	assert.Equal(t, http.StatusSeeOther, home.Code)
	assert.Equal(t, "/", home.Header().Get("Location"))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
