package tftp

import (
	"bytes"
	"fmt"
	"io"
)

// WriteSampleFile writes blocks full 512-byte blocks to w. Each block
// starts with a "Block <n>" marker line and is padded with 'A' bytes,
// so transfers of the result are easy to eyeball and every block
// except an appended partial one is exactly full.
func WriteSampleFile(w io.Writer, blocks int) error {
	for i := 1; i <= blocks; i++ {
		marker := fmt.Sprintf("Block %d\n", i)
		padding := bytes.Repeat([]byte{'A'}, blockSize-len(marker))
		if _, err := io.WriteString(w, marker); err != nil {
			return err
		}
		if _, err := w.Write(padding); err != nil {
			return err
		}
	}
	return nil
}
