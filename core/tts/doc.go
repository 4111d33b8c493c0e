// Package tts provides the text-to-speech contract and the Google REST
// implementation used by the audio reconciliation run.
package tts
