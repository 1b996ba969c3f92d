package origami

// Option configures a Generate call.
//
// Example:
//
//	// Trait-default fold count on the reference canvas
//	a := origami.Generate(42)
//
//	// Fixed fold count, larger canvas
//	a := origami.Generate(42, origami.WithFolds(120), origami.WithSize(1600, 1600))
type Option func(*config)

// config holds the resolved options of one Generate call.
type config struct {
	folds  int // -1 means "use the MaxFolds trait"
	width  int
	height int
	table  *Table
}

func defaultConfig() config {
	return config{
		folds:  -1,
		width:  CanvasSize,
		height: CanvasSize,
		table:  ReferenceTable(),
	}
}

// WithFolds fixes the number of fold iterations. Without it the artwork's
// own MaxFolds trait is used, which keeps every render of a seed identical.
// Zero is valid and yields the untouched start rectangle.
func WithFolds(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.folds = n
		}
	}
}

// WithSize sets the output canvas dimensions. Non-positive dimensions are
// kept as given and produce the defined empty artwork rather than an error.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithTable injects a reference color table. Tests use this to run against
// freshly built tables; production callers keep the process-wide one.
func WithTable(t *Table) Option {
	return func(c *config) {
		if t != nil {
			c.table = t
		}
	}
}
