package parse

import (
	"time"

	"dayflow/pkg/dateparse"
)

// Parser is the natural-language task inference engine. It is stateless
// apart from its clock and date extractor; every method is a pure function
// of its input and the injected "now".
type Parser struct {
	dates *dateparse.Extractor
	now   func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the wall clock. Used by tests to make date-relative
// inference deterministic.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// New creates a new Parser on top of the given date extractor.
func New(dates *dateparse.Extractor, opts ...Option) *Parser {
	p := &Parser{
		dates: dates,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
