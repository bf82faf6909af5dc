// Package report summarizes a solved dataflow.V2S: per-leaf, per-resource
// utilization and per-boundary crossing usage, the information
// log_resource_utilization printed in the original implementation.
//
// It also defines EventSink, the narrow logging interface the root
// Partition entry point accepts (Options.Sink) instead of a process-wide
// global logger (spec.md's
// "accept a structured event sink" design note), with a no-op
// implementation for tests and a stdlib-log-backed implementation for
// callers that want console output.
package report
