package fixed

import (
	"testing"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

func TestDecider_Scale(t *testing.T) {
	testCases := []struct {
		inputConfig    Config
		expectedOutput sdk.Decision
		name           string
	}{
		{
			inputConfig: Config{Storage: 1000, Memory: 100, Nodes: 3},
			expectedOutput: sdk.Decision{
				Reason: "fixed storage [1000] memory [100] nodes [3]",
				RequiredCapacity: sdk.Capacity{
					Tier: sdk.ResourceAmounts{Storage: 3000, Memory: 300},
					Node: sdk.ResourceAmounts{Storage: 1000, Memory: 100},
				},
			},
			name: "explicit node count",
		},
		{
			inputConfig: Config{Storage: 500},
			expectedOutput: sdk.Decision{
				Reason: "fixed storage [500] memory [0] nodes [1]",
				RequiredCapacity: sdk.Capacity{
					Tier: sdk.ResourceAmounts{Storage: 500},
					Node: sdk.ResourceAmounts{Storage: 500},
				},
			},
			name: "node count defaults to one",
		},
		{
			inputConfig: Config{},
			expectedOutput: sdk.Decision{
				Reason:           "fixed storage [0] memory [0] nodes [1]",
				RequiredCapacity: sdk.ZeroCapacity,
			},
			name: "empty config requires nothing",
		},
	}

	d := New(hclog.NewNullLogger())
	ctx := &sdk.DecisionContext{Tier: "data_hot"}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedOutput, d.Scale(tc.inputConfig, ctx))
		})
	}
}
