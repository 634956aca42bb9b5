package domain

// MediaKind is the closed set of attachment kinds the bot accepts.
type MediaKind int

const (
	MediaAudio MediaKind = iota
	MediaVoice
	MediaVideo
	MediaVideoNote
	MediaDocument
)

// String returns the Telegram content-type name for the kind.
func (k MediaKind) String() string {
	switch k {
	case MediaAudio:
		return "audio"
	case MediaVoice:
		return "voice"
	case MediaVideo:
		return "video"
	case MediaVideoNote:
		return "video_note"
	case MediaDocument:
		return "document"
	default:
		return "unknown"
	}
}

// MaxRecognitionBytes is the size cap for files sent for recognition.
// Files routed to the edit workflow are not subject to it.
const MaxRecognitionBytes = 20 * 1024 * 1024

// Media describes one incoming attachment uniformly across kinds.
// FileID is the transport's opaque remote handle; FileName is empty for
// kinds that carry no declared name (voice, video note).
type Media struct {
	Kind     MediaKind
	Size     int64
	FileID   string
	FileName string
}

// TooLarge reports whether the attachment exceeds the recognition cap.
func (m Media) TooLarge() bool {
	return m.Size > MaxRecognitionBytes
}

// Editable reports whether the attachment kind can carry an audio file
// for the metadata edit workflow.
func (m Media) Editable() bool {
	return m.Kind == MediaAudio || m.Kind == MediaDocument
}
