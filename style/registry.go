package style

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry hands out shared styles. Identical attributes always map to the same *Style.
// Styles are never evicted; the registry grows with the number of distinct styles seen.
type Registry struct {
	mu     sync.Mutex
	styles map[Attributes]*Style
	order  []*Style
	logger logrus.FieldLogger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report newly created styles.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		styles: make(map[Attributes]*Style),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrCreate returns the shared style for the given attributes, creating it on first use.
func (r *Registry) GetOrCreate(font string, size int, bold, italic bool, color Color, underline bool, alignment Alignment) *Style {
	return r.Get(Attributes{
		Font:      font,
		Size:      size,
		Bold:      bold,
		Italic:    italic,
		Color:     color,
		Underline: underline,
		Alignment: alignment,
	})
}

// Get is GetOrCreate for an Attributes value.
func (r *Registry) Get(attrs Attributes) *Style {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.styles[attrs]; ok {
		return s
	}

	s := &Style{attrs: attrs}
	r.styles[attrs] = s
	r.order = append(r.order, s)

	r.logger.WithFields(logrus.Fields{
		"font":  attrs.Font,
		"size":  attrs.Size,
		"color": attrs.Color.String(),
		"count": len(r.order),
	}).Debug("style created")

	return s
}

// Len returns the number of distinct styles created so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Styles returns the created styles in creation order.
func (r *Registry) Styles() []*Style {
	r.mu.Lock()
	defer r.mu.Unlock()

	styles := make([]*Style, len(r.order))
	copy(styles, r.order)
	return styles
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
