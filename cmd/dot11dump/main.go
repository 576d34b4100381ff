// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Command dot11dump reads hex-encoded MPDUs from stdin, one per line,
// and prints the decoded record. Adapted from the hex-dump-then-decode
// idiom used to feed captured frames to a protocol decoder, with the
// transport that produced the bytes stripped out in favor of plain
// stdin.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hhorai/dot11mpdu/encoding/dot11"
)

func main() {
	hasFCS := flag.Bool("fcs", false, "input frames include a trailing 4-byte FCS")
	ccmpLegacyPN5 := flag.Bool("ccmp-legacy-pn5", false, "read CCMP PN5 from byte 0 instead of byte 7")
	baBitmapLen := flag.Int("ba-bitmap-len", 128, "basic Block Ack bitmap length in bytes")
	flag.Parse()

	opts := dot11.ParseOptions{
		HasFCS:        *hasFCS,
		CCMPLegacyPN5: *ccmpLegacyPN5,
		BABitmapLen:   *baBitmapLen,
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.ReplaceAll(line, " ", "")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		buf, err := hex.DecodeString(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping invalid hex line: %s\n", err)
			continue
		}

		fmt.Printf("dump: %x\n", buf)
		r, err := dot11.Parse(buf, opts)
		if err != nil {
			fmt.Printf("parse error: %s\n", err)
			continue
		}
		printRecord(r)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %s\n", err)
		os.Exit(1)
	}
}

func printRecord(r *dot11.MpduRecord) {
	fmt.Printf("type=%d subtype=%d offset=%d stripped=%d\n",
		r.FrameCtrl.Type, r.FrameCtrl.Subtype, r.Offset, r.Stripped)
	fmt.Printf("addr1=%s present=%v\n", r.Addr1, r.Present)
	for _, e := range r.Err {
		fmt.Printf("err: %s: %s\n", e.Location, e.Message)
	}
}
