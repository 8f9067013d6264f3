// Package tabs tracks which of a fixed set of named panels is active.
package tabs

import "slices"

// Workspace tab identifiers.
const (
	Assess  = "assess"
	Results = "results"
	Roadmap = "roadmap"
	Chat    = "chat"
)

// Controller keeps exactly one tab active.
type Controller struct {
	ids    []string
	active int
}

// New returns a controller over ids with the first one active. It panics on
// an empty id list.
func New(ids ...string) *Controller {
	if len(ids) == 0 {
		panic("tabs: New requires at least one id")
	}
	return &Controller{ids: slices.Clone(ids)}
}

// Switch activates id. Unknown ids leave the state unchanged.
func (c *Controller) Switch(id string) bool {
	i := slices.Index(c.ids, id)
	if i < 0 {
		return false
	}
	c.active = i
	return true
}

func (c *Controller) Active() string { return c.ids[c.active] }

func (c *Controller) IsActive(id string) bool { return c.Active() == id }

// ActivePanel returns the panel id paired with the active tab.
func (c *Controller) ActivePanel() string { return PanelID(c.Active()) }

// Next activates the following tab, wrapping around.
func (c *Controller) Next() string {
	c.active = (c.active + 1) % len(c.ids)
	return c.Active()
}

// Prev activates the preceding tab, wrapping around.
func (c *Controller) Prev() string {
	c.active = (c.active - 1 + len(c.ids)) % len(c.ids)
	return c.Active()
}

// IDs returns the tab ids in order.
func (c *Controller) IDs() []string { return slices.Clone(c.ids) }

// PanelID maps a tab id to its panel id.
func PanelID(id string) string { return "tab-" + id }
