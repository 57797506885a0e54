package sdk

import (
	"errors"
	"fmt"

	multierror "github.com/hashicorp/go-multierror"

	errHelper "github.com/tejaswini0604/tier-autoscaler/sdk/helper/error"
)

// DeciderConfig is the configuration variant consumed by one decider kind.
// Each decider implementation owns a single concrete config type; Decider
// names the kind the variant belongs to and keys the registry dispatch.
type DeciderConfig interface {
	Decider() string
}

// Policy binds a tier to an ordered collection of decider configurations.
// It is the internal representation of an autoscaling policy document and
// is immutable once validated.
type Policy struct {

	// Name uniquely identifies the policy amongst all configured policies.
	Name string

	// Tier is the named class of nodes this policy targets.
	Tier string

	// Deciders is the ordered collection of decider configurations the
	// engine will evaluate for this policy. Decider names are unique within
	// a policy; a duplicate is a configuration defect rejected by Validate.
	Deciders []DeciderConfig
}

// Validate applies validation rules that are independent of how the policy
// was sourced. A policy which fails validation must never reach the engine.
func (p *Policy) Validate() error {
	if p == nil {
		return nil
	}

	var result *multierror.Error

	if p.Name == "" {
		result = multierror.Append(result, errors.New("policy name is required"))
	}

	if p.Tier == "" {
		result = multierror.Append(result, errors.New("policy tier is required"))
	}

	if len(p.Deciders) == 0 {
		result = multierror.Append(result, errors.New("policy has no deciders configured"))
	}

	seen := make(map[string]struct{}, len(p.Deciders))
	for _, d := range p.Deciders {
		name := d.Decider()
		if _, ok := seen[name]; ok {
			result = multierror.Append(result, fmt.Errorf("duplicate decider %q in policy", name))
			continue
		}
		seen[name] = struct{}{}
	}

	return errHelper.FormattedMultiError(result)
}

// DecisionContext is the immutable per-policy value handed to each decider.
// It bundles the input snapshots with the tier's estimated current capacity
// and is constructed once per policy evaluation.
type DecisionContext struct {

	// Tier is the tier the enclosing policy targets.
	Tier string

	// Cluster is the topology snapshot the evaluation runs against.
	Cluster *ClusterSnapshot

	// Telemetry is the resource telemetry snapshot the evaluation runs
	// against.
	Telemetry *TelemetrySnapshot

	// CurrentCapacity is the tier's estimated current capacity, unknown
	// when telemetry was incomplete for any node in the tier.
	CurrentCapacity CurrentCapacity
}
