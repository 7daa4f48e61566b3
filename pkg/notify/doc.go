// Package notify maintains the in-session inbox of user-facing alerts.
//
// Notifications come from job matches, application status changes, chat
// activity, and system messages; the store does not care about the origin.
// The list is ordered newest-first, the unread count is always derived from
// the list, and every mutation snapshots the full list to durable storage in
// the background so mutations never block on persistence.
package notify
