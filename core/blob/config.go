package blob

// Config holds configuration for the blob store.
type Config struct {
	// Backend selects the store implementation (drive, s3).
	Backend string `mapstructure:"backend" default:"drive"`
	// DestFolderID is the parent folder (drive) or key prefix (s3) under
	// which the audio folder is created.
	DestFolderID string `mapstructure:"dest_folder_id" default:""`
	// S3 holds settings for the s3 backend.
	S3 S3Config `mapstructure:"s3"`
}

// S3Config holds configuration for the S3-compatible backend.
type S3Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store audio files in.
	Bucket string `mapstructure:"bucket" default:"sentence-audio"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PublicBaseURL is the URL prefix for shareable object links.
	// Empty means links point at the endpoint directly.
	PublicBaseURL string `mapstructure:"public_base_url" default:""`
}

const (
	BackendDrive = "drive"
	BackendS3    = "s3"
)

// IsValidBackend checks if the configured backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendDrive, BackendS3:
		return true
	default:
		return false
	}
}
