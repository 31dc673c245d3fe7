// Package domain defines the value types exchanged with the ZeroEntropy
// document-search backend.
//
// This package is part of the hexagonal architecture's innermost layer.
// None of these types are persisted here; the remote service owns all
// durable state and every value is a per-request snapshot:
//
//   - DocumentContent: The closed sum type submitted for indexing
//   - DocumentInfo / PageInfo: Metadata snapshots of stored documents
//   - Filter: Metadata predicate passed through to queries
//   - DocumentResult / PageResult / SnippetResult: Ranked matches
//   - RerankResult: Scores for caller-supplied texts
//   - IndexingStatus: Aggregate indexing counters
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
