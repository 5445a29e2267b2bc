package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	asciiart "github.com/ShakedAmar118/ascii-art-generator"
)

func main() {
	inputFont := flag.String("font", "",
		"Path to the input TTF font file (required)")
	outputFile := flag.String("output", "",
		"Path to save the output glyph data file (required)")
	flag.Parse()

	if *inputFont == "" || *outputFile == "" {
		fmt.Println("Both -font and -output flags are required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Printf("Computing glyphs for font: %s", *inputFont)

	data, err := asciiart.ComputeGlyphData(*inputFont)
	if err != nil {
		log.Fatalf("Failed to compute glyphs: %v", err)
	}
	log.Printf("Computed %d glyphs", len(data.Glyphs))

	var buf bytes.Buffer
	if err := asciiart.WriteGlyphData(&buf, data); err != nil {
		log.Fatalf("Failed to encode glyph data: %v", err)
	}
	if err := os.WriteFile(*outputFile, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("Failed to save glyph data: %v", err)
	}

	if fileInfo, err := os.Stat(*outputFile); err == nil {
		log.Printf("Saved glyph data to %s (%.2f KB)", *outputFile, float64(fileInfo.Size())/1024)
	}
	log.Printf("Use it with: asciiart -glyphs %s", *outputFile)
}
