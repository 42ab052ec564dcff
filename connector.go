package tftp

import (
	"log"
	"net"
	"strconv"
	"time"
)

// connector abstracts the UDP socket so the transfer engine can be
// driven by a scripted transport in tests. ReadFrom reports timeouts
// as a status instead of an error because the engine treats them as
// ordinary events.
type connector interface {
	ReadFrom(buffer []byte) (statusCode, int, *net.UDPAddr, error)
	WriteTo(buffer []byte, addr *net.UDPAddr) (statusCode, int, error)
	SetReadTimeout(t time.Duration)
	Close() error
}

type udpConnector struct {
	socket      *net.UDPConn
	readTimeout time.Duration
}

func createUDPAddress(addressString string, port int) (*net.UDPAddr, error) {
	address := addressString + ":" + strconv.Itoa(port)
	return net.ResolveUDPAddr("udp4", address)
}

// newUDPConnector binds an unconnected socket on an ephemeral local
// port. The socket stays unconnected because the server may answer
// from a different port than the one the request was sent to.
func newUDPConnector() (*udpConnector, error) {
	socket, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return nil, err
	}
	return &udpConnector{
		socket:      socket,
		readTimeout: defaultReceiveTimeout,
	}, nil
}

func (connector *udpConnector) SetReadTimeout(t time.Duration) {
	connector.readTimeout = t
}

func (connector *udpConnector) ReadFrom(buffer []byte) (statusCode, int, *net.UDPAddr, error) {
	err := connector.socket.SetReadDeadline(time.Now().Add(connector.readTimeout))
	if err != nil {
		return fail, 0, nil, err
	}
	n, addr, err := connector.socket.ReadFromUDP(buffer)
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return timedOut, 0, nil, nil
	}
	if err != nil {
		return fail, n, addr, err
	}
	return success, n, addr, nil
}

func (connector *udpConnector) WriteTo(buffer []byte, addr *net.UDPAddr) (statusCode, int, error) {
	n, err := connector.socket.WriteToUDP(buffer, addr)
	if err != nil {
		return fail, n, err
	}
	return success, n, nil
}

func (connector *udpConnector) Close() error {
	return connector.socket.Close()
}

// traceConnector decorates another connector and logs every datagram
// that passes through it.
type traceConnector struct {
	extension connector
	log       *log.Logger
}

func (tracer *traceConnector) ReadFrom(buffer []byte) (statusCode, int, *net.UDPAddr, error) {
	status, n, addr, err := tracer.extension.ReadFrom(buffer)
	switch status {
	case success:
		if n < headerLength {
			tracer.log.Printf("recv %d byte datagram from=%v", n, addr)
			break
		}
		seg := createSegment(buffer[:n])
		tracer.log.Printf("recv opcode=%d block=%d payload=%d from=%v",
			seg.getOpcode(), seg.getBlockNumber(), len(seg.data), addr)
	case timedOut:
		tracer.log.Printf("recv timeout")
	}
	return status, n, addr, err
}

func (tracer *traceConnector) WriteTo(buffer []byte, addr *net.UDPAddr) (statusCode, int, error) {
	status, n, err := tracer.extension.WriteTo(buffer, addr)
	seg := createSegment(buffer)
	if seg.getOpcode() == opcodeAck {
		tracer.log.Printf("send ack block=%d to=%v", seg.getBlockNumber(), addr)
	} else {
		tracer.log.Printf("send opcode=%d bytes=%d to=%v", seg.getOpcode(), n, addr)
	}
	return status, n, err
}

func (tracer *traceConnector) SetReadTimeout(t time.Duration) {
	tracer.extension.SetReadTimeout(t)
}

func (tracer *traceConnector) Close() error {
	return tracer.extension.Close()
}
