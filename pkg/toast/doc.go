// Package toast delivers transient alerts to the rendering layer.
//
// Stores emit a toast when an operation completes (account created,
// verification code sent, new notification arrived) and the active view
// subscribes to the hub to display them. Toasts are fire-and-forget:
// nothing is persisted, and a toast shown while no view is subscribed is
// dropped.
//
// # Usage
//
// Stores hold a *Hub and emit through the level helpers:
//
//	hub.Success("Logged in successfully!")
//	hub.WithTitle(toast.TypeInfo, n.Title, n.Message, n.Link)
//
// The rendering layer subscribes once at startup:
//
//	cancel := hub.Subscribe(func(t toast.Toast) {
//	    showToastWidget(t.Level, t.Title, t.Message)
//	})
//	defer cancel()
package toast
