package tftp

import (
	"net"
	"time"

	"github.com/stretchr/testify/suite"
)

type tftpTestSuite struct {
	suite.Suite
}

func (suite *tftpTestSuite) handleTestError(err error) {
	if err != nil {
		suite.Errorf(err, "Error occurred")
	}
}

func testServerAddr() *net.UDPAddr {
	return &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: DefaultPort}
}

type sentDatagram struct {
	data []byte
	to   *net.UDPAddr
}

type scriptedEvent struct {
	timeout bool
	data    []byte
	from    *net.UDPAddr
}

// scriptedConnector replays a fixed sequence of receive outcomes and
// records everything written through it. Once the script runs out it
// keeps reporting timeouts, like a server that went silent.
type scriptedConnector struct {
	events      []scriptedEvent
	sent        []sentDatagram
	readTimeout time.Duration
	closed      bool
}

func (conn *scriptedConnector) deliver(data []byte, from *net.UDPAddr) {
	conn.events = append(conn.events, scriptedEvent{data: data, from: from})
}

func (conn *scriptedConnector) timeoutOnce() {
	conn.events = append(conn.events, scriptedEvent{timeout: true})
}

func (conn *scriptedConnector) ReadFrom(buffer []byte) (statusCode, int, *net.UDPAddr, error) {
	if len(conn.events) == 0 {
		return timedOut, 0, nil, nil
	}
	ev := conn.events[0]
	conn.events = conn.events[1:]
	if ev.timeout {
		return timedOut, 0, nil, nil
	}
	copy(buffer, ev.data)
	return success, len(ev.data), ev.from, nil
}

func (conn *scriptedConnector) WriteTo(buffer []byte, addr *net.UDPAddr) (statusCode, int, error) {
	data := make([]byte, len(buffer))
	copy(data, buffer)
	conn.sent = append(conn.sent, sentDatagram{data: data, to: addr})
	return success, len(buffer), nil
}

func (conn *scriptedConnector) SetReadTimeout(t time.Duration) {
	conn.readTimeout = t
}

func (conn *scriptedConnector) Close() error {
	conn.closed = true
	return nil
}

func (conn *scriptedConnector) ackBlocks() []uint16 {
	var blocks []uint16
	for _, datagram := range conn.sent {
		seg := createSegment(datagram.data)
		if seg.getOpcode() == opcodeAck {
			blocks = append(blocks, seg.getBlockNumber())
		}
	}
	return blocks
}

func makeDataSegment(blockNumber uint16, payload []byte) []byte {
	buffer := make([]byte, headerLength+len(payload))
	setOpcode(buffer, opcodeData)
	setBlockNumber(buffer, blockNumber)
	copy(buffer[headerLength:], payload)
	return buffer
}

func repeatByte(b byte, size int) []byte {
	payload := make([]byte, size)
	for i := range payload {
		payload[i] = b
	}
	return payload
}
