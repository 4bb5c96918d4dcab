package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"dronesrt/internal/logging"
)

// Entry is a subtitle entry whose text the processor rewrites. Timing and
// index stay with the container and are never touched.
type Entry interface {
	Text() string
	SetText(text string)
}

// Fragment is one emitted field value. Value is the bare reading and Text the
// formatted output including label and separator.
type Fragment struct {
	Kind  FieldKind
	Value string
	Text  string
}

// Stats summarises a processing run.
type Stats struct {
	Entries         int
	EmptyEntries    int
	Fragments       map[FieldKind]int
	MalformedGPS    int
	MalformedHeight int
}

// Option customises a Processor.
type Option func(*Processor)

// WithLogger attaches a logger; debug level reports malformed tokens.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithProgress registers a callback invoked after every processed entry.
func WithProgress(fn func(done, total int)) Option {
	return func(p *Processor) {
		p.progress = fn
	}
}

// Processor rewrites subtitle entries according to a Selection. It owns the
// tracker state of exactly one run and is not safe for concurrent use.
type Processor struct {
	selection Selection
	fields    []FieldKind
	state     TrackerState
	stats     Stats
	logger    *slog.Logger
	progress  func(done, total int)
}

// NewProcessor returns a processor with empty tracker state. It fails with
// ErrNoFields when the selection enables nothing.
func NewProcessor(selection Selection, opts ...Option) (*Processor, error) {
	if err := selection.Validate(); err != nil {
		return nil, err
	}
	p := &Processor{
		selection: selection,
		fields:    selection.Fields(),
		stats:     Stats{Fragments: make(map[FieldKind]int)},
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.NewComponentLogger(p.logger, "telemetry")
	return p, nil
}

// Selection returns the selection the processor was built with.
func (p *Processor) Selection() Selection {
	return p.selection
}

// State exposes the tracker state, mainly for inspection in tests.
func (p *Processor) State() *TrackerState {
	return &p.state
}

// Stats returns a snapshot of the run statistics.
func (p *Processor) Stats() Stats {
	out := p.stats
	out.Fragments = make(map[FieldKind]int, len(p.stats.Fragments))
	for k, v := range p.stats.Fragments {
		out.Fragments[k] = v
	}
	return out
}

// Tokenize splits entry text on spaces and line breaks. Consecutive
// delimiters produce empty tokens, which match no field.
func Tokenize(text string) []string {
	return strings.Split(lineBreaks.Replace(text), " ")
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Fragments runs every enabled field over every token of text, in token order
// and then field order, and returns the matches. Trackers advance as a side
// effect.
func (p *Processor) Fragments(text string) []Fragment {
	var out []Fragment
	for _, token := range Tokenize(text) {
		for _, kind := range p.fields {
			if frag, ok := p.apply(kind, token); ok {
				out = append(out, frag)
			}
		}
	}
	return out
}

// ProcessText returns the replacement text for one entry.
func (p *Processor) ProcessText(text string) string {
	frags := p.Fragments(text)
	parts := make([]string, 0, len(frags))
	for _, frag := range frags {
		parts = append(parts, frag.Text)
	}
	return strings.Join(parts, "")
}

// Process rewrites every entry in order. Entries are never added, removed or
// reordered; an entry without matches ends up with empty text.
func (p *Processor) Process(ctx context.Context, entries []Entry) error {
	total := len(entries)
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		text := p.ProcessText(entry.Text())
		entry.SetText(text)
		p.stats.Entries++
		if text == "" {
			p.stats.EmptyEntries++
		}
		if p.progress != nil {
			p.progress(i+1, total)
		}
	}

	p.logger.Info("telemetry processed",
		logging.Int("entries", p.stats.Entries),
		logging.Int("empty_entries", p.stats.EmptyEntries),
		logging.Int("malformed_gps", p.stats.MalformedGPS),
		logging.Int("malformed_height", p.stats.MalformedHeight),
	)
	if p.stats.Entries > 0 && p.stats.EmptyEntries == p.stats.Entries {
		logging.WarnWithContext(p.logger, "no telemetry matched any entry", "telemetry_no_matches",
			logging.String(logging.FieldErrorHint, "check that the input is a drone overlay track and the selected fields exist in it"),
			logging.String(logging.FieldImpact, "every output entry is empty"),
		)
	}
	return nil
}

func (p *Processor) apply(kind FieldKind, token string) (Fragment, bool) {
	var (
		value string
		ok    bool
	)
	switch kind {
	case FieldHeightBarometer, FieldHeightUltrasonic:
		mode := HeightBarometer
		if kind == FieldHeightUltrasonic {
			mode = HeightUltrasonic
		}
		h, err := ParseHeight(token, mode)
		if err != nil {
			if errors.Is(err, ErrMalformedHeight) {
				p.stats.MalformedHeight++
				p.logger.Debug("skipping malformed height token", logging.String("token", token), logging.Error(err))
			}
			return Fragment{}, false
		}
		value, ok = h.Text+"m", true
	case FieldDate:
		value, ok = dateValue(token)
	case FieldTime:
		value, ok = clockValue(token)
	case FieldDuration:
		value, ok = p.state.Duration.observe(token)
	case FieldSpeed:
		var err error
		value, ok, err = p.state.Speed.observe(token)
		if err != nil {
			p.stats.MalformedGPS++
			p.logger.Debug("skipping malformed gps token", logging.String("token", token), logging.Error(err))
		}
	}
	if !ok {
		return Fragment{}, false
	}
	p.stats.Fragments[kind]++
	return Fragment{Kind: kind, Value: value, Text: Format(kind, p.selection.Label, value)}, true
}
