package shell

import (
	"github.com/gin-gonic/gin"

	authdomain "mindcare-client/internal/auth/domain"
)

// navLinks is the navbar shown on authenticated pages.
var navLinks = []gin.H{
	{"path": "/journal", "label": "Journal"},
	{"path": "/mood-history", "label": "Mood"},
	{"path": "/doctors", "label": "Doctors"},
	{"path": "/my-appointments", "label": "My Appointments"},
	{"path": "/support", "label": "Support"},
}

// Renderer wraps every view in the shell envelope: session state, navbar,
// drained notices and any fired delayed navigation.
type Renderer struct {
	notifier  *Notifier
	navigator *Navigator
}

func NewRenderer(notifier *Notifier, navigator *Navigator) *Renderer {
	return &Renderer{notifier: notifier, navigator: navigator}
}

func (r *Renderer) Notifier() *Notifier   { return r.notifier }
func (r *Renderer) Navigator() *Navigator { return r.navigator }

// Envelope builds the common view wrapper. The navbar only shows on
// authenticated pages, never on /login or /register.
func (r *Renderer) Envelope(c *gin.Context, session *authdomain.Session, view gin.H) gin.H {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}

	loggedIn := session.HasToken()
	sessionView := gin.H{"loggedIn": loggedIn}
	if loggedIn {
		sessionView["username"] = session.Username
		sessionView["role"] = session.Role
	}

	envelope := gin.H{
		"session": sessionView,
		"notices": r.notifier.Drain(),
		"view":    view,
	}
	if loggedIn && path != "/login" && path != "/register" {
		envelope["navbar"] = navLinks
	}
	if redirect := r.navigator.Consume(); redirect != "" {
		envelope["redirect"] = redirect
	}
	return envelope
}
