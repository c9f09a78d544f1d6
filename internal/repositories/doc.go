// Package repositories provides the persistence layer for provider fetches.
//
// The system itself owns no durable entities (tracks are created fresh per
// request, analyses are derived synchronously), but the fetches that produce
// them may be cached upstream. [Cache] stores provider responses in SQLite as
// JSON keyed by kind and id, with a TTL matching the original five-minute
// revalidation window, and round-trips them losslessly.
package repositories
