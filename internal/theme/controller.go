package theme

import (
	"fmt"

	"github.com/routerlogin/routerlogin/internal/render"
)

type Controller struct {
	storage Storage
	root    Root
	ambient Theme
	current Theme
}

// New creates a theme controller. The ambient theme is used when
// the storage holds no valid theme.
func New(storage Storage, root Root, ambient Theme) *Controller {
	return &Controller{
		storage: storage,
		root:    root,
		ambient: ambient,
	}
}

// Init sets the initial theme from the storage, or from the
// ambient theme if the storage has no valid theme.
func (c *Controller) Init() (err error) {
	initial := c.ambient
	value, ok := c.storage.Get(StorageKey)
	if ok {
		stored, err := Parse(value)
		if err == nil {
			initial = stored
		}
	}
	return c.Set(initial)
}

func (c *Controller) Toggle() (err error) {
	return c.Set(c.current.toggled())
}

// Set persists the theme and then applies it to the root.
// If persisting fails, the theme is not applied.
func (c *Controller) Set(theme Theme) (err error) {
	err = c.storage.Set(StorageKey, string(theme))
	if err != nil {
		return fmt.Errorf("storing theme: %w", err)
	}
	c.current = theme
	c.apply()
	return nil
}

func (c *Controller) Current() Theme {
	return c.current
}

func (c *Controller) apply() {
	icon, navbar := "fas fa-moon", "navbar-light bg-light"
	if c.current == Dark {
		icon, navbar = "fas fa-sun", "navbar-dark bg-dark"
	}
	c.root.SetAttribute("data-bs-theme", string(c.current))
	c.root.SetIconClass(render.IconThemeToggle, icon)
	c.root.SetIconClass(render.IconThemeToggleFloat, icon)
	c.root.SetIconClass(render.IconThemeDropdown, icon+" me-1")
	c.root.SetNavbarClass(navbar)
}
