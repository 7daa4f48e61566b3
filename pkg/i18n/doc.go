// Package i18n holds the active display language and resolves translation
// keys to display strings.
//
// Lookup never fails: a key missing from the active language falls back to
// the default language, and a key missing everywhere is returned verbatim so
// the UI shows the raw key instead of nothing. The second case is logged as
// a missing-translation warning.
package i18n
