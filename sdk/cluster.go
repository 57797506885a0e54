package sdk

// Node is a single member of the cluster topology snapshot. Tier membership
// is derived from its role names and attributes rather than a rigid node
// type, so the engine stays decoupled from any particular topology scheme.
type Node struct {

	// ID uniquely identifies the node and keys its telemetry readings.
	ID string `json:"id"`

	// Roles is the set of role names the node declares.
	Roles []string `json:"roles"`

	// Attributes is the free-form attribute mapping attached to the node.
	Attributes map[string]string `json:"attributes"`
}

// HasRole returns whether the node declares the named role.
func (n *Node) HasRole(name string) bool {
	for _, role := range n.Roles {
		if role == name {
			return true
		}
	}
	return false
}

// ClusterSnapshot is an immutable point-in-time view of the cluster
// topology, supplied fully resolved by the caller. The engine performs no
// topology discovery of its own.
type ClusterSnapshot struct {
	Nodes []Node `json:"nodes"`
}

// DiskUsage is a single node's storage reading within one telemetry view.
type DiskUsage struct {

	// TotalBytes is the total storage capacity of the node's data path.
	TotalBytes int64 `json:"total_bytes"`
}

// TelemetrySnapshot is an immutable point-in-time view of per-node storage
// telemetry. It carries two independent views keyed by node ID; absence of
// a node in a view is the explicit unknown sentinel for that reading.
type TelemetrySnapshot struct {

	// LeastAvailableDiskUsage reports each node's data path with the least
	// available space.
	LeastAvailableDiskUsage map[string]DiskUsage `json:"least_available_disk"`

	// MostAvailableDiskUsage reports each node's data path with the most
	// available space.
	MostAvailableDiskUsage map[string]DiskUsage `json:"most_available_disk"`
}
