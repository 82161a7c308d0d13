// Copyright 2026 go-quickmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Command qminfo reports which lane backend a quickmath build uses and what
// the host CPU could use instead.
//
// Usage:
//
//	qminfo              # text report
//	qminfo -json        # machine-readable report
//	qminfo -check       # also verify Inverse(M)×M ≈ I for every matrix order
//	qminfo -v           # debug logging on stderr
//
// The backend is fixed at build time. To build with packed AVX2 lanes:
//
//	GOAMD64=v3 GOEXPERIMENT=simd go build ./cmd/qminfo
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/ajroetker/go-quickmath/lane"
)

// errCheckFailed is returned when -check finds an inverse outside tolerance.
var errCheckFailed = errors.New("inverse check failed")

type shapeInfo struct {
	Name   string `json:"name"`
	Packed bool   `json:"packed"`
}

type vecmathInfo struct {
	Architecture string `json:"architecture"`
	SSE2         bool   `json:"sse2"`
	AVX2         bool   `json:"avx2"`
	NEON         bool   `json:"neon"`
	Level        string `json:"level"`
}

type report struct {
	GOOS      string        `json:"goos"`
	GOARCH    string        `json:"goarch"`
	Level     string        `json:"level"`
	Width     int           `json:"width_bytes"`
	HostLevel string        `json:"host_level"`
	Host      lane.Features `json:"host"`
	Vecmath   vecmathInfo   `json:"vecmath"`
	Shapes    []shapeInfo   `json:"shapes"`
	Checks    []checkResult `json:"checks,omitempty"`
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("qminfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jsonOut := fs.Bool("json", false, "Write the report as JSON")
	verbose := fs.Bool("v", false, "Enable debug logging")
	check := fs.Bool("check", false, "Verify Inverse(M)×M ≈ I for 2x2, 3x3 and 4x4 matrices")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: qminfo [flags]\n\n")
		fmt.Fprintf(stderr, "Reports the quickmath lane backend and host SIMD support.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	r := buildReport(logger)
	if best := r.Host.BestLevel(); best > lane.CurrentLevel() {
		goamd64 := "v3"
		if best == lane.LevelAVX512 {
			goamd64 = "v4"
		}
		logger.Warn("host supports a wider lane backend than this build",
			"build", lane.CurrentName(), "host", best.String(),
			"hint", fmt.Sprintf("rebuild with GOAMD64=%s GOEXPERIMENT=simd", goamd64))
	}

	var checkErr error
	if *check {
		r.Checks, checkErr = runChecks(logger)
	}

	var err error
	if *jsonOut {
		err = writeJSON(stdout, r)
	} else {
		err = writeText(stdout, r)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return checkErr
}

func buildReport(logger *slog.Logger) report {
	host := lane.HostFeatures()
	vf := cpu.DetectFeatures()
	logger.Debug("detected host features", "lane", host, "vecmath", vf)

	return report{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		Level:     lane.CurrentName(),
		Width:     lane.CurrentWidth(),
		HostLevel: host.BestLevel().String(),
		Host:      host,
		Vecmath: vecmathInfo{
			Architecture: vf.Architecture,
			SSE2:         vf.HasSSE2,
			AVX2:         vf.HasAVX2,
			NEON:         vf.HasNEON,
			Level:        vecmathLevel(vf).String(),
		},
		Shapes: shapes(),
	}
}

// vecmathLevel returns the SIMD level algo-vecmath dispatches to on f.
func vecmathLevel(f cpu.Features) cpu.SIMDLevel {
	for _, l := range []cpu.SIMDLevel{cpu.SIMDAVX2, cpu.SIMDSSE2, cpu.SIMDNEON} {
		if cpu.Supports(f, l) {
			return l
		}
	}
	return cpu.SIMDNone
}

func shapes() []shapeInfo {
	return []shapeInfo{
		{"float32x2", lane.Packed[float32, [2]float32]()},
		{"float32x3", lane.Packed[float32, [3]float32]()},
		{"float32x4", lane.Packed[float32, [4]float32]()},
		{"float32x8", lane.Packed[float32, [8]float32]()},
		{"float64x2", lane.Packed[float64, [2]float64]()},
		{"float64x3", lane.Packed[float64, [3]float64]()},
		{"float64x4", lane.Packed[float64, [4]float64]()},
		{"float64x8", lane.Packed[float64, [8]float64]()},
		{"int32x2", lane.Packed[int32, [2]int32]()},
		{"int32x3", lane.Packed[int32, [3]int32]()},
		{"int32x4", lane.Packed[int32, [4]int32]()},
		{"int32x8", lane.Packed[int32, [8]int32]()},
	}
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeText(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Platform\t%s/%s\n", r.GOOS, r.GOARCH)
	fmt.Fprintf(tw, "Lane backend\t%s (%d-byte registers)\n", r.Level, r.Width)
	fmt.Fprintf(tw, "Host best\t%s\n", r.HostLevel)
	fmt.Fprintf(tw, "Host features\tsse2=%t avx=%t avx2=%t fma=%t avx512f=%t neon=%t\n",
		r.Host.HasSSE2, r.Host.HasAVX, r.Host.HasAVX2, r.Host.HasFMA, r.Host.HasAVX512F, r.Host.HasNEON)
	fmt.Fprintf(tw, "Batch kernels\t%s\n", r.Vecmath.Level)
	fmt.Fprintf(tw, "\nShape\tPacked\n")
	fmt.Fprintf(tw, "-----\t------\n")
	for _, s := range r.Shapes {
		fmt.Fprintf(tw, "%s\t%t\n", s.Name, s.Packed)
	}
	if len(r.Checks) > 0 {
		fmt.Fprintf(tw, "\nCheck\tMax error\tTolerance\tOK\n")
		fmt.Fprintf(tw, "-----\t---------\t---------\t--\n")
		for _, c := range r.Checks {
			fmt.Fprintf(tw, "%s\t%.3g\t%.3g\t%t\n", c.Name, c.MaxError, c.Tolerance, c.OK)
		}
	}
	return tw.Flush()
}
