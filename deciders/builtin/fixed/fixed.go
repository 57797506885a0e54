// Package fixed implements the fixed decider, which requests a statically
// configured amount of capacity regardless of the cluster's current state.
// It is the simplest decider and is always registered, which also keeps the
// default registry non-empty.
package fixed

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/tejaswini0604/tier-autoscaler/deciders"
	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

// Name is the unique name of this decider amongst all deciders.
const Name = "fixed"

// defaultNodes is the node count assumed when the config omits it.
const defaultNodes = 1

// Config is the configuration variant consumed by the fixed decider.
type Config struct {

	// Storage is the storage requirement, in bytes, of a single node.
	Storage int64 `hcl:"storage,optional"`

	// Memory is the memory requirement, in bytes, of a single node.
	Memory int64 `hcl:"memory,optional"`

	// Nodes is the number of nodes the tier should provide. Defaults to 1
	// when zero or negative.
	Nodes int `hcl:"nodes,optional"`
}

// Decider satisfies the sdk.DeciderConfig interface.
func (Config) Decider() string { return Name }

// Assert that Decider meets the deciders.Decider contract.
var _ deciders.Decider[Config] = (*Decider)(nil)

// Decider is the fixed implementation of the decider contract.
type Decider struct {
	logger hclog.Logger
}

// New returns the fixed decider.
func New(log hclog.Logger) *Decider {
	return &Decider{logger: log.Named(Name)}
}

// Name satisfies the Name function of the decider contract.
func (d *Decider) Name() string { return Name }

// Scale satisfies the Scale function of the decider contract. The required
// node capacity is the configured per-node amounts and the tier capacity is
// that multiplied by the configured node count.
func (d *Decider) Scale(config Config, ctx *sdk.DecisionContext) sdk.Decision {
	nodes := config.Nodes
	if nodes <= 0 {
		nodes = defaultNodes
	}

	required := sdk.Capacity{
		Tier: sdk.ResourceAmounts{
			Storage: config.Storage * int64(nodes),
			Memory:  config.Memory * int64(nodes),
		},
		Node: sdk.ResourceAmounts{
			Storage: config.Storage,
			Memory:  config.Memory,
		},
	}

	d.logger.Trace("calculated fixed capacity requirement",
		"tier", ctx.Tier, "storage", config.Storage, "memory", config.Memory, "nodes", nodes)

	return sdk.Decision{
		Reason:           fmt.Sprintf("fixed storage [%d] memory [%d] nodes [%d]", config.Storage, config.Memory, nodes),
		RequiredCapacity: required,
	}
}
