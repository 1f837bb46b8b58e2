// Package domain contains the core domain types for the todo service:
// the Todo entity, the InstanceMetadata value object, and the sentinel
// errors shared across all layers.
package domain
