// Package execution records what happened during each instruction executed
// on the CPU. The Result type carries the decoded definition, the effective
// address, the cycle count actually consumed, and whether any of the
// documented hardware bugs fired along the way. The debugger's disassembly
// output is built from these records.
//
// Result.IsValid() cross-checks a record against its instruction
// definition. The CPU itself doesn't call it on the hot path - it exists
// for tests and debugging contexts, where the cost doesn't matter.
package execution
