// Package diagnostic collects structured findings produced while validating
// a schema catalog.
//
// Key capabilities:
//   - Error accumulation across all entries of a catalog (no first-error abort)
//   - Entry and field attribution for every finding
//   - Suggestion lists for near-miss names
package diagnostic
