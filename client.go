package tftp

import (
	"io"
	"log"
	"net"
	"os"
	"time"
)

// Client performs one read transfer at a time against a single server.
// It owns its socket exclusively; Close releases it.
type Client struct {
	connection connector
	remote     *net.UDPAddr
}

// Dial resolves the server endpoint and binds a local UDP socket with
// the default receive timeout.
func Dial(server string, port int) (*Client, error) {
	remote, err := createUDPAddress(server, port)
	if err != nil {
		return nil, err
	}
	connection, err := newUDPConnector()
	if err != nil {
		return nil, err
	}
	return &Client{
		connection: connection,
		remote:     remote,
	}, nil
}

// SetTimeout overrides the per-receive wait used by the transfer loop.
func (client *Client) SetTimeout(t time.Duration) {
	client.connection.SetReadTimeout(t)
}

// Trace routes a log line for every datagram sent or received through
// logger.
func (client *Client) Trace(logger *log.Logger) {
	client.connection = &traceConnector{
		extension: client.connection,
		log:       logger,
	}
}

// Fetch requests filename from the server and writes the received
// content to sink in block order. It returns the number of payload
// bytes written, which may be non-zero even when err is set.
func (client *Client) Fetch(filename string, sink io.Writer) (int64, error) {
	if err := sendReadRequest(client.connection, client.remote, filename); err != nil {
		return 0, err
	}
	return runTransfer(client.connection, client.remote, sink)
}

// FetchFile requests filename and overwrites the local file of the
// same name with the received content. The local file is created only
// after the request preconditions pass, so a failed request never
// touches it.
func (client *Client) FetchFile(filename string) (int64, error) {
	if err := sendReadRequest(client.connection, client.remote, filename); err != nil {
		return 0, err
	}
	file, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	written, transferErr := runTransfer(client.connection, client.remote, file)
	closeErr := file.Close()
	if transferErr != nil {
		return written, transferErr
	}
	return written, closeErr
}

func (client *Client) Close() error {
	return client.connection.Close()
}
