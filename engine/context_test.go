package engine

import (
	"testing"

	"github.com/shoenig/test/must"

	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

func TestEstimateCurrentCapacity(t *testing.T) {
	testCases := []struct {
		name             string
		inputTier        string
		inputCluster     *sdk.ClusterSnapshot
		inputTelemetry   *sdk.TelemetrySnapshot
		expectedCapacity sdk.Capacity
		expectedTrusted  bool
	}{
		{
			name:             "empty tier is zero capacity and trusted",
			inputTier:        "data_hot",
			inputCluster:     &sdk.ClusterSnapshot{},
			inputTelemetry:   &sdk.TelemetrySnapshot{},
			expectedCapacity: sdk.ZeroCapacity,
			expectedTrusted:  true,
		},
		{
			name:      "no matching nodes is zero capacity and trusted",
			inputTier: "data_hot",
			inputCluster: &sdk.ClusterSnapshot{Nodes: []sdk.Node{
				{ID: "n1", Roles: []string{"master"}},
			}},
			inputTelemetry:   &sdk.TelemetrySnapshot{},
			expectedCapacity: sdk.ZeroCapacity,
			expectedTrusted:  true,
		},
		{
			name:      "estimate is the max of the two views",
			inputTier: "data_hot",
			inputCluster: &sdk.ClusterSnapshot{Nodes: []sdk.Node{
				{ID: "n1", Roles: []string{"data_hot"}},
			}},
			inputTelemetry: &sdk.TelemetrySnapshot{
				LeastAvailableDiskUsage: map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}},
				MostAvailableDiskUsage:  map[string]sdk.DiskUsage{"n1": {TotalBytes: 150}},
			},
			expectedCapacity: sdk.Capacity{
				Tier: sdk.ResourceAmounts{Storage: 150},
				Node: sdk.ResourceAmounts{Storage: 150},
			},
			expectedTrusted: true,
		},
		{
			name:      "node missing both views counts zero and is untrusted",
			inputTier: "data_hot",
			inputCluster: &sdk.ClusterSnapshot{Nodes: []sdk.Node{
				{ID: "n1", Roles: []string{"data_hot"}},
				{ID: "n2", Roles: []string{"data_hot"}},
			}},
			inputTelemetry: &sdk.TelemetrySnapshot{
				LeastAvailableDiskUsage: map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}},
				MostAvailableDiskUsage:  map[string]sdk.DiskUsage{"n1": {TotalBytes: 120}},
			},
			expectedCapacity: sdk.Capacity{
				Tier: sdk.ResourceAmounts{Storage: 120},
				Node: sdk.ResourceAmounts{Storage: 120},
			},
			expectedTrusted: false,
		},
		{
			name:      "node missing one view is untrusted but still counted",
			inputTier: "data_hot",
			inputCluster: &sdk.ClusterSnapshot{Nodes: []sdk.Node{
				{ID: "n1", Roles: []string{"data_hot"}},
			}},
			inputTelemetry: &sdk.TelemetrySnapshot{
				LeastAvailableDiskUsage: map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}},
			},
			expectedCapacity: sdk.Capacity{
				Tier: sdk.ResourceAmounts{Storage: 100},
				Node: sdk.ResourceAmounts{Storage: 100},
			},
			expectedTrusted: false,
		},
		{
			name:      "tier storage sums, node storage takes the max",
			inputTier: "data_hot",
			inputCluster: &sdk.ClusterSnapshot{Nodes: []sdk.Node{
				{ID: "n1", Roles: []string{"data_hot"}},
				{ID: "n2", Roles: []string{"data_hot"}},
			}},
			inputTelemetry: &sdk.TelemetrySnapshot{
				LeastAvailableDiskUsage: map[string]sdk.DiskUsage{"n1": {TotalBytes: 50}, "n2": {TotalBytes: 200}},
				MostAvailableDiskUsage:  map[string]sdk.DiskUsage{"n1": {TotalBytes: 50}, "n2": {TotalBytes: 200}},
			},
			expectedCapacity: sdk.Capacity{
				Tier: sdk.ResourceAmounts{Storage: 250},
				Node: sdk.ResourceAmounts{Storage: 200},
			},
			expectedTrusted: true,
		},
		{
			name:      "attribute membership matches without a role",
			inputTier: "data_warm",
			inputCluster: &sdk.ClusterSnapshot{Nodes: []sdk.Node{
				{ID: "n1", Roles: []string{"ingest"}, Attributes: map[string]string{"data": "data_warm"}},
			}},
			inputTelemetry: &sdk.TelemetrySnapshot{
				LeastAvailableDiskUsage: map[string]sdk.DiskUsage{"n1": {TotalBytes: 75}},
				MostAvailableDiskUsage:  map[string]sdk.DiskUsage{"n1": {TotalBytes: 75}},
			},
			expectedCapacity: sdk.Capacity{
				Tier: sdk.ResourceAmounts{Storage: 75},
				Node: sdk.ResourceAmounts{Storage: 75},
			},
			expectedTrusted: true,
		},
		{
			name:      "node matching both branches is counted once",
			inputTier: "data_hot",
			inputCluster: &sdk.ClusterSnapshot{Nodes: []sdk.Node{
				{ID: "n1", Roles: []string{"data_hot"}, Attributes: map[string]string{"data": "data_hot"}},
			}},
			inputTelemetry: &sdk.TelemetrySnapshot{
				LeastAvailableDiskUsage: map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}},
				MostAvailableDiskUsage:  map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}},
			},
			expectedCapacity: sdk.Capacity{
				Tier: sdk.ResourceAmounts{Storage: 100},
				Node: sdk.ResourceAmounts{Storage: 100},
			},
			expectedTrusted: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			capacity, trusted := estimateCurrentCapacity(tc.inputTier, tc.inputCluster, tc.inputTelemetry)
			must.Eq(t, tc.expectedCapacity, capacity)
			must.Eq(t, tc.expectedTrusted, trusted)
		})
	}
}

func TestNewDecisionContext(t *testing.T) {
	cluster := &sdk.ClusterSnapshot{Nodes: []sdk.Node{
		{ID: "n1", Roles: []string{"data_hot"}},
		{ID: "n2", Roles: []string{"data_hot"}},
	}}

	t.Run("complete telemetry yields known capacity", func(t *testing.T) {
		telemetry := &sdk.TelemetrySnapshot{
			LeastAvailableDiskUsage: map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}, "n2": {TotalBytes: 50}},
			MostAvailableDiskUsage:  map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}, "n2": {TotalBytes: 50}},
		}

		ctx := newDecisionContext("data_hot", cluster, telemetry)
		must.Eq(t, "data_hot", ctx.Tier)

		capacity, ok := ctx.CurrentCapacity.Get()
		must.True(t, ok)
		must.Eq(t, int64(150), capacity.Tier.Storage)
		must.Eq(t, int64(100), capacity.Node.Storage)
	})

	t.Run("partial telemetry yields unknown capacity", func(t *testing.T) {
		telemetry := &sdk.TelemetrySnapshot{
			LeastAvailableDiskUsage: map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}},
			MostAvailableDiskUsage:  map[string]sdk.DiskUsage{"n1": {TotalBytes: 100}},
		}

		ctx := newDecisionContext("data_hot", cluster, telemetry)
		must.False(t, ctx.CurrentCapacity.Known())
	})
}
