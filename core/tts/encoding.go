package tts

// Encoding is the audio container format produced by synthesis.
type Encoding string

const (
	EncodingMP3      Encoding = "MP3"
	EncodingOggOpus  Encoding = "OGG_OPUS"
	EncodingLinear16 Encoding = "LINEAR16"
)

// IsValid checks if the encoding is one of the supported formats.
func (e Encoding) IsValid() bool {
	switch e {
	case EncodingMP3, EncodingOggOpus, EncodingLinear16:
		return true
	default:
		return false
	}
}

// MimeType returns the MIME type for the encoding, defaulting to audio/mpeg.
func (e Encoding) MimeType() string {
	switch e {
	case EncodingOggOpus:
		return "audio/ogg"
	case EncodingLinear16:
		return "audio/wav"
	default:
		return "audio/mpeg"
	}
}

// Extension returns the file extension implied by the encoding.
func (e Encoding) Extension() string {
	switch e {
	case EncodingOggOpus:
		return ".ogg"
	case EncodingLinear16:
		return ".wav"
	default:
		return ".mp3"
	}
}
