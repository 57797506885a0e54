package sdk

import (
	"encoding/json"
	"fmt"
)

// ResourceAmounts is a pair of scalar resource measurements, expressed in
// bytes. It is the smallest unit of capacity accounting used by the
// autoscaler.
type ResourceAmounts struct {

	// Storage is the total disk capacity measurement.
	Storage int64 `json:"storage"`

	// Memory is the total memory capacity measurement. Current capacity
	// estimates always report this as zero; memory telemetry is not yet
	// captured per node. Deciders may still request memory.
	Memory int64 `json:"memory"`
}

// Add returns the component-wise sum of the two resource amounts.
func (r ResourceAmounts) Add(o ResourceAmounts) ResourceAmounts {
	return ResourceAmounts{
		Storage: r.Storage + o.Storage,
		Memory:  r.Memory + o.Memory,
	}
}

// Max returns the component-wise maximum of the two resource amounts.
func (r ResourceAmounts) Max(o ResourceAmounts) ResourceAmounts {
	out := r
	if o.Storage > out.Storage {
		out.Storage = o.Storage
	}
	if o.Memory > out.Memory {
		out.Memory = o.Memory
	}
	return out
}

// Capacity describes the resource requirement of a tier as a whole along
// with the largest requirement which must fit on any single node within it.
type Capacity struct {

	// Tier is the aggregate resource requirement across the whole tier.
	Tier ResourceAmounts `json:"tier"`

	// Node is the maximum resource requirement that must fit on any single
	// node in the tier.
	Node ResourceAmounts `json:"node"`
}

// ZeroCapacity is the distinguished capacity of an empty tier.
var ZeroCapacity = Capacity{}

func (c Capacity) String() string {
	return fmt.Sprintf("tier storage %d, tier memory %d, node storage %d, node memory %d",
		c.Tier.Storage, c.Tier.Memory, c.Node.Storage, c.Node.Memory)
}

// CurrentCapacity is the tagged optional result of estimating a tier's
// current capacity. The estimate is known only when telemetry was complete
// for every node in the tier; otherwise callers must handle the unknown
// case rather than consume a possibly-understated figure.
type CurrentCapacity struct {
	capacity Capacity
	known    bool
}

// KnownCapacity wraps a trusted capacity estimate.
func KnownCapacity(c Capacity) CurrentCapacity {
	return CurrentCapacity{capacity: c, known: true}
}

// UnknownCapacity represents a tier whose capacity could not be trusted due
// to missing telemetry.
func UnknownCapacity() CurrentCapacity {
	return CurrentCapacity{}
}

// Get returns the capacity estimate and whether it is known. The capacity
// value is only meaningful when the boolean is true.
func (c CurrentCapacity) Get() (Capacity, bool) {
	return c.capacity, c.known
}

// Known returns whether the estimate is trusted.
func (c CurrentCapacity) Known() bool {
	return c.known
}

// MarshalJSON encodes a known capacity as the capacity object and an unknown
// capacity as JSON null.
func (c CurrentCapacity) MarshalJSON() ([]byte, error) {
	if !c.known {
		return []byte("null"), nil
	}
	return json.Marshal(c.capacity)
}

// UnmarshalJSON decodes JSON null as unknown and any capacity object as a
// known estimate.
func (c *CurrentCapacity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = UnknownCapacity()
		return nil
	}

	var capacity Capacity
	if err := json.Unmarshal(data, &capacity); err != nil {
		return err
	}
	*c = KnownCapacity(capacity)
	return nil
}
