// Package querycache keeps the dashboard's reads consistent with the backing
// store after mutations. It caches collection reads per explicit QueryKey and
// single-order detail reads per order ID, and exposes the invalidate-and-
// refetch primitive the command handlers call after every confirmed mutation.
//
// Two deliberate simplicity choices shape the package:
//   - no TTL: entries go stale only through explicit invalidation, which is
//     appropriate for a low-write-volume admin tool
//   - no optimistic state: a failed fetch is a visible error, never a stale
//     snapshot dressed up as fresh
package querycache
