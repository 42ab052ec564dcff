package main

import (
	"flag"
	"fmt"
	"os"

	tftp "github.com/hfessler/tftp-go"
)

var (
	blocks = flag.Int("blocks", 5, "number of 512-byte blocks to write")
	output = flag.String("o", "data.txt", "output file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tftp-genfile: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := tftp.WriteSampleFile(file, *blocks); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
