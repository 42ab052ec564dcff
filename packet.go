package tftp

import "encoding/binary"

func bytesToUint16(buffer []byte) uint16 {
	return binary.BigEndian.Uint16(buffer)
}

func setOpcode(buffer []byte, opcode uint16) {
	binary.BigEndian.PutUint16(buffer[opcodePosition.Start:opcodePosition.End], opcode)
}

func setBlockNumber(buffer []byte, blockNumber uint16) {
	binary.BigEndian.PutUint16(buffer[blockNumberPosition.Start:blockNumberPosition.End], blockNumber)
}

// segment is a received datagram viewed through the 4-byte TFTP header.
// data aliases buffer, no copies are made.
type segment struct {
	buffer []byte
	data   []byte
}

func (seg *segment) getOpcode() uint16 {
	return bytesToUint16(seg.buffer[opcodePosition.Start:opcodePosition.End])
}

func (seg *segment) getBlockNumber() uint16 {
	return bytesToUint16(seg.buffer[blockNumberPosition.Start:blockNumberPosition.End])
}

// isTerminal reports whether this segment ends the transfer. A full
// payload means the server has more blocks to send.
func (seg *segment) isTerminal() bool {
	return len(seg.data) < blockSize
}

func createSegment(buffer []byte) *segment {
	var data []byte
	if len(buffer) > headerLength {
		data = buffer[headerLength:]
	}
	return &segment{
		buffer: buffer,
		data:   data,
	}
}

func createAckPacket(blockNumber uint16) []byte {
	buffer := make([]byte, headerLength)
	setOpcode(buffer, opcodeAck)
	setBlockNumber(buffer, blockNumber)
	return buffer
}

func createReadRequestPacket(filename string) []byte {
	buffer := make([]byte, 0, opcodePosition.End+len(filename)+1+len(octetMode)+1)
	buffer = binary.BigEndian.AppendUint16(buffer, opcodeReadRequest)
	buffer = append(buffer, filename...)
	buffer = append(buffer, 0)
	buffer = append(buffer, octetMode...)
	buffer = append(buffer, 0)
	return buffer
}
