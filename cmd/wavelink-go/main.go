package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wavelink-audio/wavelink-go/pkg/wavelink"
)

func main() {
	configPath := flag.String("config", "", "optional TOML config with library paths and trace flag")
	trace := flag.Bool("trace", false, "log every native call to stdout")
	flag.Parse()

	log.Printf("wavelink-go version: %s (API v%d)", wavelink.WrapperVersion(), wavelink.APIVersion)

	cfg := wavelink.Config{}
	if *configPath != "" {
		loaded, err := wavelink.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	if *trace {
		cfg.Trace = true
	}

	lib, err := wavelink.Open(cfg)
	if err != nil {
		if errors.Is(err, wavelink.ErrLibraryNotFound) {
			// Guidance already went to stderr.
			os.Exit(1)
		}
		log.Fatalf("unexpected failure opening library: %v", err)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	build, err := lib.BuildID()
	if err != nil {
		log.Fatalf("build id: %v", err)
	}
	fmt.Printf("loaded libwavelink build %s\n", build)

	// Round-trip a link through the SDK as a smoke test.
	link, err := lib.LinkFromString("wavelink:track:0000000000000000")
	if err != nil {
		log.Fatalf("link: %v", err)
	}
	if link == nil {
		fmt.Println("link not recognized by this SDK build")
		return
	}
	defer func() { _ = link.Close() }()

	uri, err := lib.LinkString(link)
	if err != nil {
		log.Fatalf("link string: %v", err)
	}
	fmt.Printf("link round-trip: %s\n", uri)
}
