// Package host connects the visual pipeline to the plugin host. A bridge
// pushes named events (audio analysis frames and parameter values) to
// subscribers, and accepts parameter values sent back from the UI.
package host

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// Event ids used by the plugin host.
const (
	EventAnalysis = "audioAnalysis"

	ParamExpansion  = "expansion"
	ParamExcitation = "excitation"
	ParamMix        = "mix"
	ParamInputGain  = "inputGain"
	ParamOutputGain = "outputGain"
	ParamBypass     = "bypass"
)

// SliderParams lists every continuous parameter id.
var SliderParams = []string{
	ParamExpansion,
	ParamExcitation,
	ParamMix,
	ParamInputGain,
	ParamOutputGain,
}

var (
	// ErrClosed is returned when using a bridge after Close.
	ErrClosed = errors.New("bridge closed")
	// ErrUnknownBridge is returned by InitBridge for unregistered names.
	ErrUnknownBridge = errors.New("bridge not found")
)

// Listener receives the raw JSON payload of an event.
type Listener func(payload []byte)

// Bridge is an inbound event source. Events for a single id are delivered in
// order; there is no ordering across ids.
type Bridge interface {
	// Init should do nothing if called more than once.
	Init() error
	Close() error

	// Subscribe registers fn for events named id. The returned function
	// removes the subscription and is safe to call more than once.
	Subscribe(id string, fn Listener) (unsubscribe func())

	// Send delivers a UI-originated value for id to the host.
	Send(id string, payload []byte) error

	// Run produces events until ctx is done or the source is exhausted.
	Run(ctx context.Context) error
}

// Options configure a bridge at creation.
type Options struct {
	Script io.Reader // event script, used by the script bridge
	Rate   float64   // analysis events per second, used by the generator
}

type NamedBridge struct {
	Name string
	New  func(Options) Bridge
}

var Bridges []NamedBridge

// RegisterBridge registers a bridge constructor globally. This function is
// not thread-safe, and most packages should call it on init().
func RegisterBridge(name string, fn func(Options) Bridge) {
	Bridges = append(Bridges, NamedBridge{
		Name: name,
		New:  fn,
	})
}

// GetAllBridgeNames returns every registered bridge name.
func GetAllBridgeNames() []string {
	out := make([]string, len(Bridges))
	for i, bridge := range Bridges {
		out[i] = bridge.Name
	}
	return out
}

// FindBridge returns the named bridge constructor, or nil.
func FindBridge(name string) func(Options) Bridge {
	for _, bridge := range Bridges {
		if bridge.Name == name {
			return bridge.New
		}
	}
	return nil
}

func HasBridge(name string) bool {
	return FindBridge(name) != nil
}

// InitBridge creates and initializes the named bridge.
func InitBridge(name string, opts Options) (Bridge, error) {
	fn := FindBridge(name)
	if fn == nil {
		return nil, errors.Wrapf(ErrUnknownBridge, "%q; check list-bridges", name)
	}

	bridge := fn(opts)

	if err := bridge.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize host bridge")
	}

	return bridge, nil
}

func init() {
	RegisterBridge("local", func(Options) Bridge { return NewLocal() })
	RegisterBridge("generator", func(opts Options) Bridge { return NewGenerator(opts.Rate) })
	RegisterBridge("script", func(opts Options) Bridge { return NewScript(opts.Script) })
}
