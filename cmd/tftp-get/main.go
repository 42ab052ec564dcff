package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	tftp "github.com/hfessler/tftp-go"
)

var (
	mode       = flag.String("m", "rx", "transfer mode (rx for read)")
	port       = flag.Int("p", 0, "server port (overrides config)")
	configPath = flag.String("c", "tftp.yml", "path to client config file")
	verbose    = flag.Bool("v", false, "log every datagram")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		color.Red("tftp-get: %v", err)
		os.Exit(1)
	}
}

func run() error {
	if *mode != "rx" {
		return fmt.Errorf("unsupported mode %q, use -m rx for reading a file", *mode)
	}
	filename := "data.txt"
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	config, err := tftp.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *port != 0 {
		config.Port = *port
	}

	client, err := tftp.Dial(config.Server, config.Port)
	if err != nil {
		return err
	}
	defer client.Close()
	client.SetTimeout(config.Timeout())
	if *verbose {
		client.Trace(log.New(os.Stderr, "tftp ", log.LstdFlags))
	}

	fmt.Printf("starting TFTP transfer from %s:%d for file %s\n",
		config.Server, config.Port, filename)
	written, err := client.FetchFile(filename)
	if err != nil {
		return err
	}
	color.Green("received %d bytes into %s", written, filename)
	return nil
}
