// Package blob provides the blob store contract used to persist generated
// audio artifacts, with Google Drive and S3-compatible implementations.
//
// The engine never holds an artifact after uploading it; the store owns the
// object and the sheet references it only through the returned link.
package blob
