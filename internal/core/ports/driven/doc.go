// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Document and chunk persistence
//   - EntityStore: Canonical entity persistence and key resolution
//
// ChunkBuilder is defined here too so services depend on the chunking
// algorithm through an interface; internal/chunker implements it.
//
// The NLP components that produce tokens, tags, sentence boundaries and
// entity occurrences sit outside this core. They feed their results in
// through the driving ports and are never called from here.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driven
