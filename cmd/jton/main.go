// jton - JTON codec CLI tool
//
// Usage:
//
//	jton compress [file]     Read JSON, write JTON text
//	jton decompress [file]   Read JTON text, write JSON
//	jton stats [file]        Compare JSON vs JTON size and approximate token count
//	jton version             Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jton-dev/jton/jton"
	"github.com/klauspost/compress/zstd"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	useZstd := false
	humanReadable := false
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch arg {
		case "--zstd":
			useZstd = true
			continue
		case "--human":
			humanReadable = true
			continue
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			fileArg = arg
		}
	}

	var input io.Reader = os.Stdin
	if fileArg != "" && fileArg != "-" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	switch cmd {
	case "compress":
		cmdCompress(input, useZstd, humanReadable)
	case "decompress":
		cmdDecompress(input, useZstd)
	case "stats":
		cmdStats(input)
	case "version", "-v", "--version":
		fmt.Printf("jton %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `jton - JTON codec CLI tool (v0.1.0)

Usage:
  jton compress [file]     Read JSON, write JTON text
  jton decompress [file]   Read JTON text, write JSON
  jton stats [file]        Compare JSON vs JTON size and approximate token count
  jton version             Print version info

Options:
  --zstd     Wrap compress output (or unwrap decompress input) in zstd, for
             transport once the text has already been token-optimized.
  --human    Disable binary packers so the encoded document stays free of
             base64 payloads (compress only).

If no file is given, reads from stdin.

Examples:
  echo '[{"id":1,"name":"a"},{"id":2,"name":"b"}]' | jton compress
  cat data.jton | jton decompress > data.json
`)
}

func cmdCompress(r io.Reader, useZstd, humanReadable bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	v, err := jton.ParseJSON(data)
	if err != nil {
		fatal("parse JSON: %v", err)
	}
	opts := jton.DefaultOptions()
	if humanReadable {
		opts = jton.HumanReadableOptions()
	}
	out, err := jton.CompressWithOptions(v, opts)
	if err != nil {
		fatal("compress: %v", err)
	}
	if !useZstd {
		fmt.Println(out)
		return
	}

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		fatal("init zstd writer: %v", err)
	}
	if _, err := zw.Write([]byte(out)); err != nil {
		fatal("zstd write: %v", err)
	}
	if err := zw.Close(); err != nil {
		fatal("zstd close: %v", err)
	}
	os.Stdout.Write(buf.Bytes())
}

func cmdDecompress(r io.Reader, useZstd bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	if useZstd {
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			fatal("init zstd reader: %v", err)
		}
		defer zr.Close()
		data, err = io.ReadAll(zr)
		if err != nil {
			fatal("zstd read: %v", err)
		}
	}
	v, err := jton.Decompress(string(data))
	if err != nil {
		fatal("decompress: %v", err)
	}
	fmt.Println(jton.Canonical(v))
}

// cmdStats reports wire-size savings and an approximate token-count delta.
// There is no tokenizer library in the dependency set this tool draws
// from, so token counts are estimated the same way as byte/4, a stand-in
// ratio used only for a rough before/after comparison.
func cmdStats(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	v, err := jton.ParseJSON(data)
	if err != nil {
		fatal("parse JSON: %v", err)
	}

	canonical := jton.Canonical(v)
	encoded, err := jton.Compress(v)
	if err != nil {
		fatal("compress: %v", err)
	}

	approxTokens := func(s string) int { return (len(s) + 3) / 4 }

	fmt.Printf("canonical JSON: %d bytes, ~%d tokens\n", len(canonical), approxTokens(canonical))
	fmt.Printf("jton:           %d bytes, ~%d tokens\n", len(encoded), approxTokens(encoded))
	if len(canonical) > 0 {
		saved := 100 * (1 - float64(len(encoded))/float64(len(canonical)))
		fmt.Printf("savings:        %.1f%%\n", saved)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "jton: "+format+"\n", args...)
	os.Exit(1)
}
