// Package errors provides structured, actionable error messages for the
// SkillLink tooling.
//
// Errors carry a code, a category, a short message, and optionally a
// detailed explanation, a suggestion, and a documentation link. Codes map
// to registered templates so the CLI can print consistent, helpful output:
//
//	err := errors.New("E101").
//	    WithDetail("unexpected character '}' at offset 42").
//	    WithSuggestion("Check that skilllink.json is valid JSON")
//
//	fmt.Println(err.Format())
package errors
