package domain

// Track is a recognized or searched music track.
type Track struct {
	Title  string
	Artist string
	Album  string
	ID     string
}

// TrackMetadata is the replacement tag set parsed from user text.
// All three fields are mandatory.
type TrackMetadata struct {
	Title  string
	Artist string
	Album  string
}
