package server

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"FundTrend/internal/chart"
)

const sessionCookie = "ft_session"

// sessionStore maps session cookies to per-session chart controllers. A new
// session always starts from the default view state.
type sessionStore struct {
	mu            sync.Mutex
	sessions      map[string]*chart.Controller
	newController func() *chart.Controller
}

func newSessionStore(factory func() *chart.Controller) *sessionStore {
	return &sessionStore{
		sessions:      make(map[string]*chart.Controller),
		newController: factory,
	}
}

// get returns the controller for the request's session, creating the
// session (and its cookie) on first contact.
func (st *sessionStore) get(c *gin.Context) *chart.Controller {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, 86400, "/", "", false, true)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	ctrl, ok := st.sessions[id]
	if !ok {
		ctrl = st.newController()
		st.sessions[id] = ctrl
	}
	return ctrl
}
