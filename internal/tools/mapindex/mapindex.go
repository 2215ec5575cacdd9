// Package mapindex maps indices to identifiers from the command line, either
// locally or against a running scrambler server.
package mapindex

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	scramblerv1 "github.com/veilnum/veilnum/api/gen/go/scrambler/v1"
	platformgrpc "github.com/veilnum/veilnum/internal/platform/grpc"
	"github.com/veilnum/veilnum/internal/scramble"
)

const dialTimeout = 5 * time.Second

// Config holds configuration for command-line index mapping.
type Config struct {
	BaseOffset int64
	ShowInfo   bool
	Addr       string
	Indices    []int64
}

// ParseConfig parses flags and positional indices into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.Int64Var(&cfg.BaseOffset, "offset", 0, "uniform shift applied to the segment walk")
	fs.BoolVar(&cfg.ShowInfo, "info", false, "print table capacity and segment count")
	fs.StringVar(&cfg.Addr, "addr", "", "scrambler server address; maps indices remotely when set")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	for _, arg := range fs.Args() {
		index, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse index %q: %w", arg, err)
		}
		cfg.Indices = append(cfg.Indices, index)
	}
	return cfg, nil
}

// Run maps each configured index and writes one identifier per line.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if len(cfg.Indices) == 0 && !cfg.ShowInfo {
		return errors.New("at least one index is required")
	}
	if cfg.Addr != "" {
		return runRemote(ctx, cfg, out)
	}
	return runLocal(cfg, out)
}

func runLocal(cfg Config, out io.Writer) error {
	scrambler, err := scramble.New(cfg.BaseOffset)
	if err != nil {
		return err
	}

	if cfg.ShowInfo {
		if _, err := fmt.Fprintf(out, "capacity=%d segments=%d base_offset=%d\n",
			scramble.Capacity(), scramble.SegmentCount(), scrambler.BaseOffset()); err != nil {
			return err
		}
	}

	for _, index := range cfg.Indices {
		identifier, err := scrambler.MapIndex(index)
		if err != nil {
			return fmt.Errorf("map index %d: %w", index, err)
		}
		if _, err := fmt.Fprintf(out, "%d\t%s\n", index, identifier); err != nil {
			return err
		}
	}
	return nil
}

func runRemote(ctx context.Context, cfg Config, out io.Writer) error {
	if cfg.BaseOffset != 0 {
		return errors.New("the base offset is configured on the server; -offset only applies locally")
	}

	conn, err := platformgrpc.Dial(ctx, cfg.Addr, platformgrpc.DialConfig{
		HealthService: "scrambler.v1.ScramblerService",
		Timeout:       dialTimeout,
	})
	if err != nil {
		return fmt.Errorf("dial scrambler at %s: %w", cfg.Addr, err)
	}
	defer conn.Close()

	client := scramblerv1.NewScramblerServiceClient(conn)

	if cfg.ShowInfo {
		info, err := client.GetTableInfo(ctx, &scramblerv1.GetTableInfoRequest{})
		if err != nil {
			return fmt.Errorf("get table info: %w", err)
		}
		if _, err := fmt.Fprintf(out, "capacity=%d segments=%d base_offset=%d\n",
			info.GetCapacity(), info.GetSegments(), info.GetBaseOffset()); err != nil {
			return err
		}
	}

	for _, index := range cfg.Indices {
		resp, err := client.MapIndex(ctx, &scramblerv1.MapIndexRequest{Index: index})
		if err != nil {
			return fmt.Errorf("map index %d: %w", index, err)
		}
		if _, err := fmt.Fprintf(out, "%d\t%s\n", index, resp.GetIdentifier()); err != nil {
			return err
		}
	}
	return nil
}
