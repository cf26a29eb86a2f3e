// Package main provides a command-line utility to inspect NBT payloads.
// It reads a gzip, zlib, or raw NBT blob from disk and prints it as SNBT,
// or as a hex dump of the decompressed bytes for wire-level debugging.
package main

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/scigolib/nbt"
)

func main() {
	version := flag.String("version", "1.21.5", "SNBT dialect to print (1.7, 1.8, 1.12, 1.13, 1.14, 1.21.5)")
	hexDump := flag.Bool("hex", false, "Print a hex dump of the decompressed payload instead of SNBT")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: nbtdump [flags] <file.dat>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	dialect, err := parseDialect(*version)
	if err != nil {
		log.Fatalf("Invalid dialect: %v", err)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	data, err := decompress(raw)
	if err != nil {
		log.Fatalf("Failed to decompress: %v", err)
	}

	if *hexDump {
		dumpHex(data)
		return
	}

	name, tag, n, err := nbt.ReadNamed(data)
	if err != nil {
		log.Fatalf("Failed to decode NBT at offset %d: %v", n, err)
	}

	fmt.Printf("root %q (%s, %d bytes):\n", name, tag.Kind(), n)
	fmt.Println(nbt.FormatSNBT(tag, dialect))
}

func parseDialect(s string) (nbt.Dialect, error) {
	for _, d := range []nbt.Dialect{nbt.V1_7, nbt.V1_8, nbt.V1_12, nbt.V1_13, nbt.V1_14, nbt.V1_21_5} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dialect %q", s)
}

// decompress strips the gzip or zlib framing embedders wrap around NBT
// payloads, passing already-raw data through untouched.
func decompress(raw []byte) ([]byte, error) {
	if len(raw) >= 2 && raw[0] == 0x1F && raw[1] == 0x8B {
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	if len(raw) >= 2 && raw[0] == 0x78 {
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return raw, nil
}

func dumpHex(data []byte) {
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]

		fmt.Printf("%08x: ", i)
		for j := 0; j < 16; j++ {
			if j < len(chunk) {
				fmt.Printf("%02x ", chunk[j])
			} else {
				fmt.Print("   ")
			}
		}
		fmt.Print(" ")
		for _, c := range chunk {
			if c >= 0x20 && c < 0x7F {
				fmt.Printf("%c", c)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
}
