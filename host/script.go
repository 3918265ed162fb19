package host

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// ScriptEvent is one line of an event script.
type ScriptEvent struct {
	At   float64         `json:"at"` // milliseconds from the start of Run
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Script replays a JSON lines event script. Blank lines and lines starting
// with '#' are skipped. Events are played in order of their offsets.
type Script struct {
	*Local

	src    io.Reader
	events []ScriptEvent
	loaded bool
}

func NewScript(src io.Reader) *Script {
	return &Script{
		Local: NewLocal(),
		src:   src,
	}
}

// Init reads and parses the whole script.
func (s *Script) Init() error {
	if s.loaded {
		return nil
	}

	if s.src == nil {
		return errors.New("no event script given")
	}

	events, err := ParseScript(s.src)
	if err != nil {
		return err
	}

	s.events = events
	s.loaded = true

	return nil
}

// Events returns the parsed events in play order.
func (s *Script) Events() []ScriptEvent {
	return s.events
}

// Run publishes every event at its offset and returns once the script is
// done, or when ctx is.
func (s *Script) Run(ctx context.Context) error {
	start := time.Now()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for _, ev := range s.events {
		due := start.Add(time.Duration(ev.At * float64(time.Millisecond)))

		if wait := time.Until(due); wait > 0 {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(wait)

			select {
			case <-ctx.Done():
				return nil
			case <-timer.C:
			}
		}

		if err := s.Publish(ev.ID, ev.Data); err != nil {
			return errors.Wrapf(err, "failed to publish %q", ev.ID)
		}
	}

	return nil
}

// ParseScript decodes a JSON lines script.
func ParseScript(r io.Reader) ([]ScriptEvent, error) {
	var events []ScriptEvent

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for line := 1; scanner.Scan(); line++ {
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}

		var ev ScriptEvent
		if err := json.Unmarshal(text, &ev); err != nil {
			return nil, errors.Wrapf(err, "script line %d", line)
		}

		if ev.ID == "" {
			return nil, errors.Errorf("script line %d: missing event id", line)
		}

		if ev.At < 0 {
			ev.At = 0
		}

		events = append(events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read script")
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At < events[j].At
	})

	return events, nil
}
