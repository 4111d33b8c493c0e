// Package googleauth loads stored OAuth2 tokens and builds authenticated
// HTTP clients for the Google REST backends (Sheets, Drive, Text-to-Speech).
//
// The package deliberately does not implement an authorization flow; it only
// consumes a token file written by an external step.
package googleauth
