// Package config loads and saves skilllink.json, the project configuration
// file for the SkillLink client runtime and gateway.
//
// Loading applies defaults for any field the file leaves unset, so a minimal
// file like
//
//	{"name": "my-app"}
//
// yields a fully usable configuration. Errors are reported through the
// internal/errors package with codes in the E100 range.
package config
