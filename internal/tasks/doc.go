// Package tasks implements the multi-seed recommendation aggregator.
//
// The core abstraction is [Engine], which fans out one catalogue lookup per
// seed track, all concurrently, and merges the results into a single
// deduplicated list. Seed order is preserved: when the same track appears
// under multiple seeds, the earliest-listed seed's copy survives. A failed
// seed lookup degrades to an empty contribution and never cancels its
// siblings.
package tasks
