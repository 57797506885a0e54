// Package headroom implements the headroom decider, which requests the
// tier's current capacity scaled up by a configured percentage. When the
// current capacity is unknown it requests nothing rather than scale a
// possibly-understated figure.
package headroom

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/tejaswini0604/tier-autoscaler/deciders"
	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

// Name is the unique name of this decider amongst all deciders.
const Name = "headroom"

// Config is the configuration variant consumed by the headroom decider.
type Config struct {

	// Percent is the headroom to keep above the tier's current capacity,
	// applied to the tier aggregate figure. A value of 20 requests 120% of
	// the current capacity.
	Percent float64 `hcl:"percent"`
}

// Decider satisfies the sdk.DeciderConfig interface.
func (Config) Decider() string { return Name }

// Assert that Decider meets the deciders.Decider contract.
var _ deciders.Decider[Config] = (*Decider)(nil)

// Decider is the headroom implementation of the decider contract.
type Decider struct {
	logger hclog.Logger
}

// New returns the headroom decider.
func New(log hclog.Logger) *Decider {
	return &Decider{logger: log.Named(Name)}
}

// Name satisfies the Name function of the decider contract.
func (d *Decider) Name() string { return Name }

// Scale satisfies the Scale function of the decider contract.
func (d *Decider) Scale(config Config, ctx *sdk.DecisionContext) sdk.Decision {
	current, ok := ctx.CurrentCapacity.Get()
	if !ok {
		return sdk.Decision{
			Reason:           fmt.Sprintf("current capacity of tier %q is unknown, not requesting capacity", ctx.Tier),
			RequiredCapacity: sdk.ZeroCapacity,
		}
	}

	factor := 1 + config.Percent/100

	required := sdk.Capacity{
		Tier: sdk.ResourceAmounts{
			Storage: scale(current.Tier.Storage, factor),
			Memory:  scale(current.Tier.Memory, factor),
		},
		// A single node never needs to hold the headroom on its own.
		Node: current.Node,
	}

	d.logger.Trace("calculated headroom capacity requirement",
		"tier", ctx.Tier, "percent", config.Percent, "current", current.String(), "required", required.String())

	return sdk.Decision{
		Reason:           fmt.Sprintf("keeping %.0f%% headroom above current capacity", config.Percent),
		RequiredCapacity: required,
	}
}

func scale(v int64, factor float64) int64 {
	return int64(math.Ceil(float64(v) * factor))
}
