package domain

type MediaKind string

const (
	MediaAudio        MediaKind = "audio"
	MediaChat         MediaKind = "chat"
	MediaFileTransfer MediaKind = "file-transfer"
)

type StreamDirection string

const (
	SendRecv StreamDirection = "sendrecv"
	SendOnly StreamDirection = "sendonly"
	RecvOnly StreamDirection = "recvonly"
)

// FileSelector identifies the file a file-transfer stream is about.
// Size and ContentType start empty on pull requests and are populated
// by the admission controller from the backing store.
type FileSelector struct {
	Name        string
	Hash        string
	Size        int64
	ContentType string
}

// Stream describes one media stream proposed or offered on a session.
// File is set only for file-transfer streams. Streams are passed by
// pointer so admission can fill in selector metadata in place.
type Stream struct {
	Kind      MediaKind
	Direction StreamDirection
	File      *FileSelector
}

type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

// Route is one resolved transport endpoint for an outbound session.
type Route struct {
	Address   string
	Port      int
	Transport string
}

// RawHeader is an opaque extra header attached to an outbound session.
type RawHeader struct {
	Name  string
	Value string
}

// Stats is a point-in-time snapshot of the orchestrator's registries,
// reported by the telemetry worker.
type Stats struct {
	Rooms           int
	PendingSessions int
	TrackedSessions int
	LedgerEntries   int
}
