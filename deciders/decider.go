// Package deciders defines the contract satisfied by pluggable decider
// strategies and the registry the engine dispatches through. Decider
// implementations are pure: given their own configuration variant and the
// shared per-tier decision context they propose a required capacity, and
// nothing else.
package deciders

import (
	"fmt"

	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

// Decider is the contract a decider strategy must satisfy. The type
// parameter ties the strategy to the single configuration variant it
// consumes, so a registry built from NewPlugin values can never hand a
// strategy a config of the wrong kind.
type Decider[C sdk.DeciderConfig] interface {

	// Name returns the stable name of the decider. It must equal the name
	// reported by the Decider method of C.
	Name() string

	// Scale proposes the capacity the tier requires. Implementations must
	// be fast, non-blocking and free of side effects; the context is shared
	// and read-only.
	Scale(config C, ctx *sdk.DecisionContext) sdk.Decision
}

// Plugin is a type-erased, registry-ready decider. It can only be built via
// NewPlugin, which is what guarantees the invoke adapter always receives the
// config variant its strategy expects.
type Plugin struct {
	name   string
	invoke func(config sdk.DeciderConfig, ctx *sdk.DecisionContext) sdk.Decision
}

// Name returns the decider name the plugin registers under.
func (p Plugin) Name() string { return p.name }

// NewPlugin adapts a typed decider into a Plugin. The config assertion in
// the adapter cannot fail for any config variant whose Decider name routed
// it here, because one concrete config type belongs to each decider kind;
// a mismatch means the wiring collaborator paired a name with a foreign
// config type and is surfaced as a fatal defect.
func NewPlugin[C sdk.DeciderConfig](d Decider[C]) Plugin {
	return Plugin{
		name: d.Name(),
		invoke: func(config sdk.DeciderConfig, ctx *sdk.DecisionContext) sdk.Decision {
			c, ok := config.(C)
			if !ok {
				panic(fmt.Sprintf("decider %q received config variant %T", d.Name(), config))
			}
			return d.Scale(c, ctx)
		},
	}
}
