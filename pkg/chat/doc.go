// Package chat provides the messaging store: contacts, per-conversation
// message threads, and sending through a pluggable Transport.
//
// The bundled MockTransport simulates the other party with canned replies;
// WSTransport talks to the gateway's websocket endpoint. Conversations live
// in memory only — message history belongs to the backend, not the client.
package chat
