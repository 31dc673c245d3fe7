// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Backend: The document-search service (collections, documents,
//     queries, reranking, status). Implemented by the ZeroEntropy HTTP
//     client and by the in-memory store.
//   - ConfigStore: Application configuration.
//
// Backend is optional: services constructed without one fail every call
// with domain.ErrNotConfigured.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
