// Package storage provides the durable key-value facility the SkillLink
// stores persist their snapshots to.
//
// It plays the role browser local storage plays for the web client: a flat,
// string-keyed namespace of serialized values. Two backends are provided —
// MemoryStore for tests and session-scoped state, FileStore for on-disk
// persistence across restarts — plus a Prometheus-instrumented wrapper.
//
// Persistence is advisory: a failed write never affects the in-memory state
// of the store that issued it. Callers wrap failures in PersistenceError,
// log them, and continue.
package storage
