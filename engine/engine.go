// Package engine implements the autoscaling decision engine: a pure,
// deterministic computation over immutable topology and telemetry snapshots
// which produces, per configured policy, one capacity recommendation per
// decider plus an estimate of the tier's current capacity. It performs no
// I/O and holds no mutable state, so a single Engine is safe to invoke
// concurrently from the owning control loop.
package engine

import (
	"fmt"
	"sort"
	"time"

	metrics "github.com/armon/go-metrics"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/tejaswini0604/tier-autoscaler/deciders"
	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

// Engine is the top level entry point for computing autoscaling decisions.
// Its only state is the write-once decider registry.
type Engine struct {
	logger   hclog.Logger
	registry *deciders.Registry
}

// New returns an engine dispatching through the supplied registry.
func New(log hclog.Logger, registry *deciders.Registry) *Engine {
	return &Engine{
		logger:   log.Named("engine"),
		registry: registry,
	}
}

// Decide evaluates every supplied policy against the snapshots and returns
// the results sorted by policy name. An empty or nil policy set yields an
// empty result, not an error.
//
// Policies must have been validated and must only reference registered
// deciders; violations are configuration defects and panic rather than
// degrade the result.
func (e *Engine) Decide(cluster *sdk.ClusterSnapshot, telemetry *sdk.TelemetrySnapshot, policies map[string]*sdk.Policy) []sdk.PolicyDecisions {
	out := make([]sdk.PolicyDecisions, 0, len(policies))

	for name, policy := range policies {
		out = append(out, sdk.PolicyDecisions{
			Policy:    name,
			Decisions: e.decidePolicy(policy, cluster, telemetry),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Policy < out[j].Policy })
	return out
}

// decidePolicy evaluates a single policy: it builds the per-tier decision
// context and invokes each configured decider through the registry.
func (e *Engine) decidePolicy(policy *sdk.Policy, cluster *sdk.ClusterSnapshot, telemetry *sdk.TelemetrySnapshot) sdk.Decisions {
	labels := []metrics.Label{{Name: "policy_name", Value: policy.Name}, {Name: "tier", Value: policy.Tier}}
	defer metrics.MeasureSinceWithLabels([]string{"engine", "decide", "evaluate_ms"}, time.Now(), labels)

	ctx := newDecisionContext(policy.Tier, cluster, telemetry)

	if !ctx.CurrentCapacity.Known() {
		e.logger.Warn("current tier capacity is unknown due to incomplete telemetry",
			"policy", policy.Name, "tier", policy.Tier)
	}

	results := make([]sdk.DeciderDecision, 0, len(policy.Deciders))
	seen := make(map[string]struct{}, len(policy.Deciders))

	for _, config := range policy.Deciders {
		name := config.Decider()

		// Decider names are unique within a policy by construction; a
		// duplicate here means an unvalidated policy reached the engine.
		if _, ok := seen[name]; ok {
			panic(fmt.Sprintf("duplicate decider %q in policy %q", name, policy.Name))
		}
		seen[name] = struct{}{}

		decision := e.registry.Scale(config, ctx)
		e.logger.Debug("decider proposed required capacity",
			"policy", policy.Name, "tier", policy.Tier, "decider", name,
			"required", decision.RequiredCapacity.String(), "reason", decision.Reason)

		results = append(results, sdk.DeciderDecision{Name: name, Decision: decision})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	return sdk.Decisions{
		Tier:            policy.Tier,
		CurrentCapacity: ctx.CurrentCapacity,
		Deciders:        results,
	}
}
