// Package reactive provides the change-notification primitive shared by the
// SkillLink state stores.
//
// A Signal is a value container with equality-gated updates. Views subscribe
// explicitly with Subscribe and receive the new value whenever it changes;
// the returned cancel function removes the subscription. Stores expose their
// state as signals so the rendering layer can re-render on mutation without
// polling.
package reactive
