package graph

type margins struct {
	left, bottom, right, top float64
}

type config struct {
	margins  margins
	width    float64
	height   float64
	delegate Delegate
}

// Option configures an Engine.
type Option func(*config)

// WithMargins overrides the space reserved around the plotting area for
// labels. Negative values are ignored.
func WithMargins(left, bottom, right, top float64) Option {
	return func(cfg *config) {
		if left >= 0 {
			cfg.margins.left = left
		}
		if bottom >= 0 {
			cfg.margins.bottom = bottom
		}
		if right >= 0 {
			cfg.margins.right = right
		}
		if top >= 0 {
			cfg.margins.top = top
		}
	}
}

// WithSurface sets the initial surface size.
func WithSurface(width, height float64) Option {
	return func(cfg *config) {
		if width > 0 && height > 0 {
			cfg.width = width
			cfg.height = height
		}
	}
}

// WithDelegate registers the gesture delegate at construction.
func WithDelegate(d Delegate) Option {
	return func(cfg *config) { cfg.delegate = d }
}

func defaultConfig() config {
	return config{
		margins: margins{
			left:   DefaultLeftMargin,
			bottom: DefaultBottomMargin,
			right:  DefaultRightMargin,
			top:    DefaultTopMargin,
		},
	}
}
