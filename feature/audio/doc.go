// Package audio implements the audio artifact path of the pipeline: for each
// sheet row that has a translation but no audio link, synthesize speech,
// upload the file, and record a hyperlink marker in the sheet.
package audio
