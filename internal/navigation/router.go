package navigation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/carepoint/hospital-desk/internal/model"
)

var (
	// ErrNotAuthenticated is returned when a tab is selected without a session
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrTabUnavailable is returned for a tab the user's role cannot reach
	ErrTabUnavailable = errors.New("tab not available")
)

// Screen is the top-level view
type Screen int

const (
	// ScreenLanding is shown while nobody is signed in
	ScreenLanding Screen = iota
	// ScreenDashboard is shown for an authenticated session
	ScreenDashboard
)

// String returns the string representation of Screen
func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenDashboard:
		return "dashboard"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Tab is a dashboard section
type Tab string

const (
	// TabSymptoms holds the symptom checker
	TabSymptoms Tab = "symptoms"
	// TabAppointments lists the user's appointments
	TabAppointments Tab = "appointments"
	// TabDoctors is the doctor directory
	TabDoctors Tab = "doctors"
	// TabAdmin holds administrator actions
	TabAdmin Tab = "admin"
)

// DefaultTab is selected after every sign-in
const DefaultTab = TabSymptoms

// TabsFor lists the tabs user may open, in display order. The admin tab is
// present only for administrators; nil users get no tabs.
func TabsFor(user *model.User) []Tab {
	if user == nil {
		return nil
	}
	tabs := []Tab{TabSymptoms, TabAppointments, TabDoctors}
	if user.IsAdmin() {
		tabs = append(tabs, TabAdmin)
	}
	return tabs
}

func tabAllowed(user *model.User, tab Tab) bool {
	for _, t := range TabsFor(user) {
		if t == tab {
			return true
		}
	}
	return false
}

// SessionSource reports the signed-in user; nil means signed out.
// *session.Store satisfies it.
type SessionSource interface {
	CurrentUser() *model.User
}

// State is a snapshot of the view state
type State struct {
	Screen Screen
	Tab    Tab
	User   *model.User
	Tabs   []Tab
}

func (s State) same(o State) bool {
	if s.Screen != o.Screen || s.Tab != o.Tab {
		return false
	}
	if (s.User == nil) != (o.User == nil) {
		return false
	}
	return s.User == nil || (s.User.ID == o.User.ID && s.User.UserType == o.User.UserType)
}

// Router derives the screen from the session on every call and tracks the
// active tab
type Router struct {
	mu       sync.Mutex
	source   SessionSource
	tab      Tab
	userID   string
	last     State
	synced   bool
	onChange func(State)
}

// NewRouter creates a router over source
func NewRouter(source SessionSource) *Router {
	return &Router{source: source, tab: DefaultTab}
}

// SetChangeCallback registers fn to run whenever Sync or Select changes the state
func (r *Router) SetChangeCallback(fn func(State)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// state computes the state for user. Callers hold mu. The user is read
// before locking since reading it may expire the session and re-enter Sync.
func (r *Router) state(user *model.User) State {
	if user == nil {
		r.userID = ""
		r.tab = DefaultTab
		return State{Screen: ScreenLanding}
	}
	if user.ID != r.userID {
		r.userID = user.ID
		r.tab = DefaultTab
	}
	if !tabAllowed(user, r.tab) {
		r.tab = DefaultTab
	}
	return State{Screen: ScreenDashboard, Tab: r.tab, User: user, Tabs: TabsFor(user)}
}

// State returns the current state without notifying
func (r *Router) State() State {
	user := r.source.CurrentUser()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(user)
}

// Sync re-reads the session and notifies the callback if anything changed
func (r *Router) Sync() State {
	user := r.source.CurrentUser()
	r.mu.Lock()
	st := r.state(user)
	changed := !r.synced || !st.same(r.last)
	r.last = st
	r.synced = true
	fn := r.onChange
	r.mu.Unlock()

	if changed && fn != nil {
		fn(st)
	}
	return st
}

// Select activates tab on the dashboard
func (r *Router) Select(tab Tab) error {
	user := r.source.CurrentUser()
	r.mu.Lock()
	st := r.state(user)
	if st.Screen != ScreenDashboard {
		r.mu.Unlock()
		return ErrNotAuthenticated
	}
	if !tabAllowed(st.User, tab) {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTabUnavailable, tab)
	}
	r.tab = tab
	st.Tab = tab
	changed := !r.synced || !st.same(r.last)
	r.last = st
	r.synced = true
	fn := r.onChange
	r.mu.Unlock()

	if changed && fn != nil {
		fn(st)
	}
	return nil
}
