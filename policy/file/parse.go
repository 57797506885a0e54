// Package file loads autoscaling policies from HCL files and translates
// them into the engine's internal policy representation. It is the policy
// authoring boundary: every decider reference is resolved into its typed
// configuration variant here, before anything reaches the engine, so the
// engine itself never sees an unknown decider name or a malformed config.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/tejaswini0604/tier-autoscaler/deciders/builtin/fixed"
	"github.com/tejaswini0604/tier-autoscaler/deciders/builtin/headroom"
	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

// fileDecodePolicies is the top level intermediate struct when decoding a
// policy file. A single file may carry any number of policy blocks.
type fileDecodePolicies struct {
	Policies []*fileDecodePolicy `hcl:"policy,block"`
}

// fileDecodePolicy is used as an intermediate step when decoding a policy
// from a file. Decider blocks carry per-kind config bodies which cannot be
// decoded until the decider name is known, hence the hcl.Body remain.
type fileDecodePolicy struct {
	Name     string               `hcl:"name,label"`
	Tier     string               `hcl:"tier"`
	Deciders []*fileDecodeDecider `hcl:"decider,block"`
}

type fileDecodeDecider struct {
	Name   string   `hcl:"name,label"`
	Config hcl.Body `hcl:",remain"`
}

// ParseDir reads every .hcl file in dir and returns the decoded policies
// keyed by name. A policy name appearing twice across the directory is a
// configuration error.
func ParseDir(dir string) (map[string]*sdk.Policy, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy dir: %v", err)
	}

	policies := make(map[string]*sdk.Policy)

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".hcl" {
			continue
		}

		parsed, err := ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		for name, p := range parsed {
			if _, ok := policies[name]; ok {
				return nil, fmt.Errorf("policy %q defined more than once", name)
			}
			policies[name] = p
		}
	}

	return policies, nil
}

// ParseFile decodes a single policy file into validated policies keyed by
// name.
func ParseFile(path string) (map[string]*sdk.Policy, error) {
	decoded := &fileDecodePolicies{}

	if err := hclsimple.DecodeFile(path, nil, decoded); err != nil {
		return nil, fmt.Errorf("failed to decode policy file %s: %v", path, err)
	}

	policies := make(map[string]*sdk.Policy, len(decoded.Policies))

	for _, dp := range decoded.Policies {
		if _, ok := policies[dp.Name]; ok {
			return nil, fmt.Errorf("policy %q defined more than once in %s", dp.Name, path)
		}

		p, err := dp.translate()
		if err != nil {
			return nil, fmt.Errorf("invalid policy %q in %s: %v", dp.Name, path, err)
		}
		policies[dp.Name] = p
	}

	return policies, nil
}

// translate converts the intermediate decoded policy into the internal
// policy object and validates it.
func (dp *fileDecodePolicy) translate() (*sdk.Policy, error) {
	p := &sdk.Policy{
		Name: dp.Name,
		Tier: dp.Tier,
	}

	var result *multierror.Error

	for _, d := range dp.Deciders {
		config, err := decodeDeciderConfig(d)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		p.Deciders = append(p.Deciders, config)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// decodeDeciderConfig decodes a decider block body into the config variant
// belonging to the named decider kind. The switch is the closed set of
// decider kinds; referencing anything else is caught here, at the authoring
// boundary, so the registry lookup downstream cannot miss.
func decodeDeciderConfig(d *fileDecodeDecider) (sdk.DeciderConfig, error) {
	switch d.Name {
	case fixed.Name:
		var config fixed.Config
		if diags := gohcl.DecodeBody(d.Config, nil, &config); diags.HasErrors() {
			return nil, fmt.Errorf("invalid %s decider config: %v", d.Name, diags)
		}
		return config, nil
	case headroom.Name:
		var config headroom.Config
		if diags := gohcl.DecodeBody(d.Config, nil, &config); diags.HasErrors() {
			return nil, fmt.Errorf("invalid %s decider config: %v", d.Name, diags)
		}
		return config, nil
	default:
		return nil, fmt.Errorf("unknown decider %q", d.Name)
	}
}
