package blob

import "context"

// Store defines the interface for blob storage operations.
//
// The pipeline only needs two capabilities: make sure a named folder exists
// under a parent (reusing an existing one rather than duplicating it), and
// upload bytes into a folder, getting back a shareable link to persist as
// the row's marker.
type Store interface {
	// EnsureFolder returns the id of the folder with the given name under
	// parentID, creating it if it does not exist.
	EnsureFolder(ctx context.Context, parentID, name string) (string, error)

	// Upload stores data as filename inside the folder and returns a
	// shareable link to the uploaded object.
	Upload(ctx context.Context, folderID, filename string, data []byte, mimeType string) (string, error)
}
