package tftp

import "time"

const (
	opcodeReadRequest uint16 = 1
	opcodeData        uint16 = 3
	opcodeAck         uint16 = 4
)

const (
	blockSize    = 512
	headerLength = 4
	datagramSize = headerLength + blockSize
	octetMode    = "octet"
)

const (
	// DefaultServer and DefaultPort locate the server when nothing else
	// is configured.
	DefaultServer = "127.0.0.1"
	DefaultPort   = 6969
)

type statusCode int

const (
	success statusCode = iota
	fail
	timedOut
)

type position struct {
	Start int
	End   int
}

var opcodePosition = position{0, 2}
var blockNumberPosition = position{2, 4}

var defaultReceiveTimeout = 2 * time.Second

const maxRetries = 3
