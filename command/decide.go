package command

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/tejaswini0604/tier-autoscaler/deciders"
	"github.com/tejaswini0604/tier-autoscaler/deciders/builtin/fixed"
	"github.com/tejaswini0604/tier-autoscaler/deciders/builtin/headroom"
	"github.com/tejaswini0604/tier-autoscaler/engine"
	policyfile "github.com/tejaswini0604/tier-autoscaler/policy/file"
	"github.com/tejaswini0604/tier-autoscaler/sdk"
)

// registryHolder lazily constructs the builtin decider registry the first
// time a command needs it and memoizes it for the process lifetime.
var registryHolder = deciders.NewHolder(builtinRegistry)

// builtinRegistry wires every builtin decider into a registry.
func builtinRegistry() (*deciders.Registry, error) {
	log := hclog.Default().Named("deciders")
	return deciders.NewRegistry(
		deciders.NewPlugin[fixed.Config](fixed.New(log)),
		deciders.NewPlugin[headroom.Config](headroom.New(log)),
	)
}

// snapshotInput is the JSON document supplied to the decide command. It
// bundles the two immutable inputs the engine consumes; acquiring and
// refreshing them is the supplying collaborator's job, not the engine's.
type snapshotInput struct {
	Cluster   sdk.ClusterSnapshot   `json:"cluster"`
	Telemetry sdk.TelemetrySnapshot `json:"telemetry"`
}

type DecideCommand struct {
	Logger hclog.Logger
}

type decideCommandArgs struct {
	policyDir    string
	snapshotPath string
	logLevel     string
}

// Help should return long-form help text that includes the command-line
// usage, a brief few sentences explaining the function of the command,
// and the complete list of flags the command accepts.
func (c *DecideCommand) Help() string {
	helpText := `
Usage: tier-autoscaler decide [options]

  Runs a single decision pass: loads the configured capacity policies,
  reads a cluster and telemetry snapshot, and prints the per-policy
  capacity decisions as JSON. The command never acts on a decision; the
  output is intended for a downstream actuator or for inspection.

Options:

  -policy-dir=<path>
    The path to a directory of HCL policy files.

  -snapshot=<path>
    The path to a JSON file containing the cluster topology and telemetry
    snapshots to decide against.

  -log-level=<level>
    Specify the verbosity level of the logs. Valid values include DEBUG,
    INFO, and WARN, in decreasing order of verbosity. The default is INFO.
`
	return strings.TrimSpace(helpText)
}

// Synopsis should return a one-line, short synopsis of the command.
func (c *DecideCommand) Synopsis() string {
	return "Run a single autoscaling decision pass."
}

// Run should run the actual command with the given CLI instance and
// command-line arguments. It should return the exit status when it is
// finished.
func (c *DecideCommand) Run(args []string) int {
	cArgs, err := c.parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := c.Logger
	if logger == nil {
		logger = hclog.Default()
	}
	if cArgs.logLevel != "" {
		logger.SetLevel(hclog.LevelFromString(cArgs.logLevel))
	}

	policies, err := policyfile.ParseDir(cArgs.policyDir)
	if err != nil {
		logger.Error("failed to load policies", "error", err)
		return 1
	}

	input, err := readSnapshot(cArgs.snapshotPath)
	if err != nil {
		logger.Error("failed to read snapshot", "error", err)
		return 1
	}

	eng := engine.New(logger, registryHolder.Get())
	results := eng.Decide(&input.Cluster, &input.Telemetry, policies)

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logger.Error("failed to encode decisions", "error", err)
		return 1
	}

	fmt.Println(string(out))
	return 0
}

func (c *DecideCommand) parseFlags(args []string) (*decideCommandArgs, error) {
	cArgs := &decideCommandArgs{}

	flags := flag.NewFlagSet("decide", flag.ContinueOnError)
	flags.StringVar(&cArgs.policyDir, "policy-dir", "", "")
	flags.StringVar(&cArgs.snapshotPath, "snapshot", "", "")
	flags.StringVar(&cArgs.logLevel, "log-level", "", "")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse CLI args: %v", err)
	}

	if cArgs.policyDir == "" {
		return nil, fmt.Errorf("flag -policy-dir is required")
	}
	if cArgs.snapshotPath == "" {
		return nil, fmt.Errorf("flag -snapshot is required")
	}

	return cArgs, nil
}

// readSnapshot decodes the snapshot JSON document from disk.
func readSnapshot(path string) (*snapshotInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	input := &snapshotInput{}
	if err := json.Unmarshal(data, input); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %v", path, err)
	}

	return input, nil
}
