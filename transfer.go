package tftp

import (
	"fmt"
	"io"
	"net"
)

type transferStatus int

const (
	awaitingSegment transferStatus = iota
	terminatedOK
	terminatedError
)

// transferState carries the full receive-loop bookkeeping so the state
// machine can be driven one event at a time against a fake transport.
type transferState struct {
	status        transferStatus
	expectedBlock uint16
	retries       int
	lastAck       []byte
	remote        *net.UDPAddr
	bytesWritten  int64
	err           error
}

func newTransferState(remote *net.UDPAddr) *transferState {
	return &transferState{
		status:        awaitingSegment,
		expectedBlock: 1,
		remote:        remote,
	}
}

// readEvent is the outcome of one blocking receive: either a timeout
// or a datagram with its actual source address.
type readEvent struct {
	timedOut bool
	data     []byte
	from     *net.UDPAddr
}

func (state *transferState) terminate(err error) {
	state.status = terminatedError
	state.err = err
}

// transition consumes one readEvent. It is the only place transfer
// state is mutated.
func (state *transferState) transition(ev readEvent, conn connector, sink io.Writer) {
	if ev.timedOut {
		state.handleTimeout(conn)
		return
	}
	if len(ev.data) < headerLength {
		state.terminate(fmt.Errorf("%d byte datagram: %w", len(ev.data), ErrUnexpectedOpcode))
		return
	}
	seg := createSegment(ev.data)
	if seg.getOpcode() != opcodeData {
		state.terminate(fmt.Errorf("opcode %d: %w", seg.getOpcode(), ErrUnexpectedOpcode))
		return
	}
	if seg.getBlockNumber() != state.expectedBlock {
		state.terminate(fmt.Errorf("got block %d, expected %d: %w",
			seg.getBlockNumber(), state.expectedBlock, ErrOutOfOrderBlock))
		return
	}
	if _, err := sink.Write(seg.data); err != nil {
		state.terminate(err)
		return
	}
	state.bytesWritten += int64(len(seg.data))

	// Acknowledge to the address the segment arrived from. The server
	// legitimately answers from a different port than the request went
	// to, so the responding endpoint is tracked from here on.
	ack := createAckPacket(seg.getBlockNumber())
	if _, _, err := conn.WriteTo(ack, ev.from); err != nil {
		state.terminate(err)
		return
	}
	state.lastAck = ack
	state.remote = ev.from
	state.retries = 0
	state.expectedBlock++

	if seg.isTerminal() {
		state.status = terminatedOK
	}
}

func (state *transferState) handleTimeout(conn connector) {
	state.retries++
	if state.retries > maxRetries {
		state.terminate(ErrMaxRetriesExceeded)
		return
	}
	if state.lastAck == nil {
		// Nothing to resend before the first segment. The server
		// retransmits an unacknowledged first block on its own.
		return
	}
	if _, _, err := conn.WriteTo(state.lastAck, state.remote); err != nil {
		state.terminate(err)
	}
}

// runTransfer drives the receive/acknowledge loop until a terminal
// segment or an unrecoverable condition. It returns the number of
// payload bytes written to sink, which may be non-zero on failure
// since partially received content is never rolled back.
func runTransfer(conn connector, remote *net.UDPAddr, sink io.Writer) (int64, error) {
	state := newTransferState(remote)
	buffer := make([]byte, datagramSize)
	for state.status == awaitingSegment {
		status, n, from, err := conn.ReadFrom(buffer)
		if err != nil {
			return state.bytesWritten, err
		}
		state.transition(readEvent{
			timedOut: status == timedOut,
			data:     buffer[:n],
			from:     from,
		}, conn, sink)
	}
	return state.bytesWritten, state.err
}
