package tftp

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
)

// checkLocalFile verifies that filename names an existing, readable
// path. The file's contents are never read or transmitted, the check
// only exists to fail early with a precise diagnostic.
func checkLocalFile(filename string) error {
	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%q: %w", filename, ErrFileNotFound)
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%q: %w", filename, ErrPermissionDenied)
	}
	if err != nil {
		return err
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory: %w", filename, ErrFileNotFound)
	}
	return nil
}

// sendReadRequest issues the read request for filename as a single
// datagram. Loss of the request is not handled here, recovery happens
// through the transfer engine's timeout path once it starts waiting.
func sendReadRequest(conn connector, remote *net.UDPAddr, filename string) error {
	if err := checkLocalFile(filename); err != nil {
		return err
	}
	_, _, err := conn.WriteTo(createReadRequestPacket(filename), remote)
	return err
}
