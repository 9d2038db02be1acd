// Command contig-bench measures encode, compress and pool throughput on
// synthetic contiguous workloads.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/contig/compress"
	"github.com/go-faster/contig/pool"
	"github.com/go-faster/contig/zbytes"
)

func run(ctx context.Context) (re error) {
	var arg struct {
		Jobs    int
		Blocks  int
		Block   int
		Method  string
		Profile string
	}
	flag.IntVar(&arg.Jobs, "j", 4, "jobs")
	flag.IntVar(&arg.Blocks, "n", 10_000, "blocks per job")
	flag.IntVar(&arg.Block, "block", 64*1024, "block size")
	flag.StringVar(&arg.Method, "method", "LZ4", "compression method")
	flag.StringVar(&arg.Profile, "profile", "", "cpu profile")
	flag.Parse()

	method, err := compress.MethodString(arg.Method)
	if err != nil {
		return errors.Wrap(err, "method")
	}

	if arg.Profile != "" {
		f, err := os.Create(arg.Profile)
		if err != nil {
			return errors.Wrap(err, "create profile")
		}
		defer func() {
			if err := f.Close(); err != nil {
				re = multierr.Append(re, err)
			}

			fmt.Println("Done, profile wrote to", arg.Profile)
		}()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "start profile")
		}
		defer pprof.StopCPUProfile()
	}

	var (
		gotBytes  atomic.Uint64
		gotBlocks atomic.Uint64
		p         = pool.New(pool.Options{})
		g, _      = errgroup.WithContext(ctx)
		start     = time.Now()
	)
	for i := 0; i < arg.Jobs; i++ {
		g.Go(func() error {
			w := compress.NewWriter()
			var b zbytes.Buffer
			for j := 0; j < arg.Blocks; j++ {
				b.Reset()
				for b.Len() < arg.Block {
					b.PutString("contiguous data is fast data")
					b.PutUVarInt(uint64(j))
				}
				if err := w.Compress(method, b.Buf); err != nil {
					return errors.Wrap(err, "compress")
				}

				out := p.Get(b.Len())
				r := compress.NewReader(bytes.NewReader(w.Data))
				if _, err := io.ReadFull(r, out); err != nil {
					return errors.Wrap(err, "decompress")
				}
				p.Put(out)

				gotBytes.Add(uint64(b.Len()))
				gotBlocks.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "wait")
	}
	duration := time.Since(start)
	fmt.Println(duration.Round(time.Millisecond), gotBlocks.Load(), "blocks",
		humanize.Bytes(gotBytes.Load()),
		humanize.Bytes(uint64(float64(gotBytes.Load())/duration.Seconds()))+"/s",
		arg.Jobs, "jobs",
	)
	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
