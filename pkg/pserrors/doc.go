// Package pserrors provides error definitions shared by the pathstring
// commands, plugins, and output manifests.
//
// Callers wrap these sentinels with additional context so that errors can be
// matched with [errors.Is] regardless of where they were produced.
package pserrors
