package navigation

// Controller keeps the details page tab and path in step. Every tab can be
// reached from every other tab and the namespace selector stays disabled for
// the lifetime of the page, since the namespace comes from the route.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	state NavigationState
	path  string
}

// NewController starts a controller at path.
func NewController(path string) (*Controller, error) {
	st, err := ParseDetailsPath(path)
	if err != nil {
		return nil, err
	}
	return &Controller{state: st, path: st.Path()}, nil
}

// NewControllerFor starts a controller for a known CamelApp.
func NewControllerFor(namespace, name string, tab Tab) *Controller {
	st := NavigationState{Namespace: namespace, Name: name, ActiveTab: tab}
	return &Controller{state: st, path: st.Path()}
}

// State returns the current navigation state.
func (c *Controller) State() NavigationState {
	return c.state
}

// ActiveTab returns the tab currently shown.
func (c *Controller) ActiveTab() Tab {
	return c.state.ActiveTab
}

// Path returns the canonical path of the current state.
func (c *Controller) Path() string {
	return c.path
}

// Tabs returns the tab bar entries in display order.
func (c *Controller) Tabs() []Tab {
	return Tabs()
}

// Navigate moves to the state described by path, as when the user edits
// the URL.
func (c *Controller) Navigate(path string) (NavigationState, error) {
	st, err := ParseDetailsPath(path)
	if err != nil {
		return c.state, err
	}
	c.state = st
	c.path = st.Path()
	return st, nil
}

// Select activates tab, as when the user clicks its label, and returns the
// updated path.
func (c *Controller) Select(tab Tab) string {
	c.state.ActiveTab = tabFromSegment(string(tab))
	c.path = c.state.Path()
	return c.path
}

// NamespaceSelectorEnabled reports whether the namespace selector may be
// used. It is false in every state.
func (c *Controller) NamespaceSelectorEnabled() bool {
	return false
}
