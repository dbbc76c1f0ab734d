// Command gendata emits deterministic, reproducible blocks of monotonic
// uint32 test data at a requested bit width, for exercising Pack/Unpack or
// framing.EncodePage without depending on a real data source.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/blockpack/simd256/internal/testdata"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

func doMain(args []string, stdOut io.Writer, stdErr io.Writer) int {
	fs := flag.NewFlagSet("gendata", flag.ContinueOnError)
	fs.SetOutput(stdErr)

	blkLen := fs.Int("len", 256, "elements per block (multiple of 8, at least 16)")
	width := fs.Uint("width", 16, "target bit width in [0, 32]")
	seed := fs.Uint64("seed", 1, "PRNG seed")
	blocks := fs.Int("blocks", 1, "number of blocks to emit")
	chain := fs.Bool("chain", false, "shift each block after the first above the previous block's last value")
	format := fs.String("format", "text", "output format: text or binary (little-endian uint32 words)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var last uint32
	for i := 0; i < *blocks; i++ {
		blk, err := testdata.GenBlock(*blkLen, uint8(*width), *seed+uint64(i))
		if err != nil {
			fmt.Fprintf(stdErr, "gendata: %v\n", err)
			return 1
		}
		if *chain && i > 0 {
			for j := range blk {
				blk[j] += last
			}
		}
		last = blk[len(blk)-1]

		switch *format {
		case "text":
			for _, v := range blk {
				fmt.Fprintln(stdOut, v)
			}
		case "binary":
			var buf [4]byte
			for _, v := range blk {
				binary.LittleEndian.PutUint32(buf[:], v)
				if _, err := stdOut.Write(buf[:]); err != nil {
					fmt.Fprintf(stdErr, "gendata: %v\n", err)
					return 1
				}
			}
		default:
			fmt.Fprintf(stdErr, "gendata: unknown -format %q\n", *format)
			return 2
		}
	}
	return 0
}
