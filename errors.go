package tftp

import "errors"

var (
	// ErrFileNotFound and ErrPermissionDenied are local precondition
	// failures raised before any datagram is sent.
	ErrFileNotFound     = errors.New("file does not exist")
	ErrPermissionDenied = errors.New("file is not readable")

	// ErrUnexpectedOpcode and ErrOutOfOrderBlock are protocol
	// violations. Both end the transfer immediately.
	ErrUnexpectedOpcode = errors.New("unexpected opcode")
	ErrOutOfOrderBlock  = errors.New("out-of-order block")

	// ErrMaxRetriesExceeded is raised when the server stays silent
	// through every retry.
	ErrMaxRetriesExceeded = errors.New("maximum retries exceeded")
)
