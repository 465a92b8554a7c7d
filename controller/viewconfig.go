package controller

// ViewConfiguration is a host-selectable editor size. Width and Height are
// the size the editor asks the host for; the graph itself keeps whatever
// surface the host last passed to [graph.Engine.SetSurface].
type ViewConfiguration struct {
	Name          string
	Width, Height float64
}

var (
	// Expanded shows the full graph. It is the default.
	Expanded = ViewConfiguration{Name: "expanded", Width: 800, Height: 500}
	// Compact shows the text fields only.
	Compact = ViewConfiguration{Name: "compact", Width: 400, Height: 100}
)

// SupportedViewConfigurations lists the configurations the editor can
// show, largest first.
func SupportedViewConfigurations() []ViewConfiguration {
	return []ViewConfiguration{Expanded, Compact}
}

func (v ViewConfiguration) showsGraph() bool {
	return v.Width >= Expanded.Width && v.Height >= Expanded.Height
}

// ViewConfiguration returns the active configuration.
func (c *Controller) ViewConfiguration() ViewConfiguration { return c.view }

// GraphVisible reports whether the active configuration shows the graph.
func (c *Controller) GraphVisible() bool { return c.view.showsGraph() }

// SelectViewConfiguration switches to v and reports whether anything
// changed. Configurations at least as large as Expanded show the graph;
// smaller ones hide it.
func (c *Controller) SelectViewConfiguration(v ViewConfiguration) bool {
	if v == c.view {
		return false
	}
	c.view = v

	if v.showsGraph() {
		c.refresh()
	}
	c.log.Debug("view configuration selected",
		zapView(v),
	)
	return true
}

// ToggleViewConfiguration flips between Expanded and Compact.
func (c *Controller) ToggleViewConfiguration() ViewConfiguration {
	if c.view == Expanded {
		c.SelectViewConfiguration(Compact)
	} else {
		c.SelectViewConfiguration(Expanded)
	}
	return c.view
}
