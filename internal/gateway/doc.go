// Package gateway is the HTTP/WebSocket edge of SkillLink.
//
// It serves the job feed API, the avatar upload endpoint, the chat
// WebSocket, and optionally Prometheus metrics:
//
//	GET  /api/health   liveness probe
//	GET  /api/jobs     job listings, filterable by query parameters
//	POST /api/avatar   multipart avatar upload
//	GET  /avatars/*    uploaded avatar files
//	GET  /ws/chat      chat WebSocket (simulated other party)
//	GET  /metrics      Prometheus metrics, when enabled
package gateway
