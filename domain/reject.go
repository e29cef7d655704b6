package domain

// RejectCode is the fixed vocabulary of admission rejection codes
// surfaced to the remote peer.
type RejectCode int

const (
	CodeBadRequest             RejectCode = 400
	CodeForbidden              RejectCode = 403
	CodeNotFound               RejectCode = 404
	CodeTemporarilyUnavailable RejectCode = 480
	CodeNotAcceptable          RejectCode = 488
	CodeServerError            RejectCode = 500
)

func (c RejectCode) String() string {
	switch c {
	case CodeBadRequest:
		return "bad request"
	case CodeForbidden:
		return "forbidden"
	case CodeNotFound:
		return "not found"
	case CodeTemporarilyUnavailable:
		return "temporarily unavailable"
	case CodeNotAcceptable:
		return "not acceptable"
	case CodeServerError:
		return "server error"
	default:
		return "unknown"
	}
}
