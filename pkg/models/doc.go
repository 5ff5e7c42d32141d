// Package models provides shared data models for Gemsmith.
//
// # Project Identity
//
// Every generated gem is described by a [ProjectIdentity], derived once from
// the raw project name and reused by every template and destination path:
//
//	id := models.NewProjectIdentity("demo-test")
//	id.Label // "Demo Test"
//	id.Name  // "demo-test"
//	id.Path  // "demo/test"
//	id.Class // "Demo::Test"
//
// The case helpers [Titleize], [Snakecase] and [Camelcase] are exported for
// templates that need to derive additional names consistently.
package models
