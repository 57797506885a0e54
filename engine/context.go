package engine

import (
	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

// unknownStorage is the sentinel used when a node is absent from a
// telemetry view.
const unknownStorage = -1

// newDecisionContext builds the immutable per-policy context, estimating
// the tier's current capacity from the input snapshots.
func newDecisionContext(tier string, cluster *sdk.ClusterSnapshot, telemetry *sdk.TelemetrySnapshot) *sdk.DecisionContext {
	capacity, trusted := estimateCurrentCapacity(tier, cluster, telemetry)

	current := sdk.UnknownCapacity()
	if trusted {
		current = sdk.KnownCapacity(capacity)
	}

	return &sdk.DecisionContext{
		Tier:            tier,
		Cluster:         cluster,
		Telemetry:       telemetry,
		CurrentCapacity: current,
	}
}

// estimateCurrentCapacity computes the tier's current capacity from the
// topology and telemetry snapshots along with a trust flag. The estimate is
// trusted only when both telemetry views carry a reading for every node in
// the tier; an empty tier is ZeroCapacity and trusted. Callers must not use
// the numeric value when untrusted, since partial telemetry can understate
// the true capacity.
func estimateCurrentCapacity(tier string, cluster *sdk.ClusterSnapshot, telemetry *sdk.TelemetrySnapshot) (sdk.Capacity, bool) {
	var (
		tierStorage int64
		nodeStorage int64
		matched     bool
		trusted     = true
	)

	for i := range cluster.Nodes {
		node := &cluster.Nodes[i]
		if !tierContains(tier, node) {
			continue
		}
		matched = true

		least := totalStorage(telemetry.LeastAvailableDiskUsage, node.ID)
		most := totalStorage(telemetry.MostAvailableDiskUsage, node.ID)
		if least == unknownStorage || most == unknownStorage {
			trusted = false
		}

		estimate := least
		if most > estimate {
			estimate = most
		}
		if estimate == unknownStorage {
			estimate = 0
		}

		tierStorage += estimate
		if estimate > nodeStorage {
			nodeStorage = estimate
		}
	}

	if !matched {
		return sdk.ZeroCapacity, true
	}

	// Memory is always zero; memory telemetry is not captured per node yet.
	return sdk.Capacity{
		Tier: sdk.ResourceAmounts{Storage: tierStorage},
		Node: sdk.ResourceAmounts{Storage: nodeStorage},
	}, trusted
}

// tierContains reports tier membership for a node: either the node declares
// a role named after the tier, or its "data" attribute equals the tier.
// Both branches are deliberate; the attribute form supports topologies that
// tag data nodes by attribute rather than role, and neither takes priority.
func tierContains(tier string, node *sdk.Node) bool {
	return node.HasRole(tier) || node.Attributes["data"] == tier
}

// totalStorage reads a node's total storage from one telemetry view,
// returning unknownStorage when the node is absent from it.
func totalStorage(view map[string]sdk.DiskUsage, nodeID string) int64 {
	usage, ok := view[nodeID]
	if !ok {
		return unknownStorage
	}
	return usage.TotalBytes
}
