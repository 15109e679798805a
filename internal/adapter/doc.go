// Package adapter contains the per-venue extraction units. Each adapter
// produces raw event records for its venue over one of three source
// families: server-rendered HTML (goquery),
// paginated JSON REST endpoints, or offset-paginated GraphQL.
//
// Adapters never let a failure escape their boundary: a network or parse
// error is returned to the orchestrator, which records a per-venue failure
// and moves on, so one venue's outage never blocks the others.
package adapter
