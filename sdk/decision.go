package sdk

// Decision is a single decider's capacity recommendation for a tier. The
// engine treats it as opaque beyond requiring that every invoked decider
// produce one.
type Decision struct {

	// Reason is a user friendly description of why the decider proposed the
	// required capacity.
	Reason string `json:"reason"`

	// RequiredCapacity is the capacity the decider determined the tier
	// needs.
	RequiredCapacity Capacity `json:"required_capacity"`
}

// DeciderDecision pairs a decider name with the decision it produced.
type DeciderDecision struct {
	Name     string   `json:"name"`
	Decision Decision `json:"decision"`
}

// Decisions is the evaluation result of a single policy: the tier it
// targets, the tier's estimated current capacity, and one decision per
// configured decider sorted by decider name.
type Decisions struct {
	Tier            string            `json:"tier"`
	CurrentCapacity CurrentCapacity   `json:"current_capacity"`
	Deciders        []DeciderDecision `json:"deciders"`
}

// Lookup returns the decision produced by the named decider, if present.
func (d *Decisions) Lookup(name string) (Decision, bool) {
	for _, dd := range d.Deciders {
		if dd.Name == name {
			return dd.Decision, true
		}
	}
	return Decision{}, false
}

// PolicyDecisions pairs a policy name with its evaluation result. The
// engine returns these sorted by policy name so output ordering is stable
// regardless of input iteration order.
type PolicyDecisions struct {
	Policy    string    `json:"policy"`
	Decisions Decisions `json:"decisions"`
}
