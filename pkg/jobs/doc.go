// Package jobs provides the job feed: listings with search and filtering,
// saved jobs, and application tracking.
//
// Listings come from a pluggable Source — the bundled fixture catalogue or
// the gateway's HTTP API — while saved jobs and applications are the user's
// own state, persisted like the other stores.
package jobs
