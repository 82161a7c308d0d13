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


package main

import (
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-quickmath/lane"
	"github.com/ajroetker/go-quickmath/qm"
)

type checkResult struct {
	Name      string  `json:"name"`
	MaxError  float64 `json:"max_error"`
	Tolerance float64 `json:"tolerance"`
	OK        bool    `json:"ok"`
}

type inverseCheck struct {
	name string
	tol  float64
	run  func() float64
}

// Integer matrices have determinant 1 so their inverses stay integral.
var inverseChecks = []inverseCheck{
	{"2x2 float32", 1e-4, func() float64 { return inverseError2(qm.New2x2[float32](4, 7, 2, 6)) }},
	{"2x2 float64", 1e-12, func() float64 { return inverseError2(qm.New2x2[float64](4, 7, 2, 6)) }},
	{"2x2 int32", 0, func() float64 { return inverseError2(qm.New2x2[int32](2, 1, 1, 1)) }},
	{"3x3 float32", 1e-4, func() float64 { return inverseError3(tridiagonal3x3[float32]()) }},
	{"3x3 float64", 1e-12, func() float64 { return inverseError3(tridiagonal3x3[float64]()) }},
	{"3x3 int32", 0, func() float64 { return inverseError3(qm.New3x3[int32](1, 2, 3, 0, 1, 4, 0, 0, 1)) }},
	{"4x4 float32", 1e-4, func() float64 { return inverseError4(dense4x4[float32]()) }},
	{"4x4 float64", 1e-12, func() float64 { return inverseError4(dense4x4[float64]()) }},
	{"4x4 int32", 0, func() float64 {
		return inverseError4(qm.New4x4[int32](1, 2, 0, 3, 0, 1, 5, 0, 0, 0, 1, 2, 0, 0, 0, 1))
	}},
}

func tridiagonal3x3[T lane.Primitive]() qm.Matrix3x3[T] {
	return qm.New3x3[T](2, -1, 0, -1, 2, -1, 0, -1, 2)
}

func dense4x4[T lane.Primitive]() qm.Matrix4x4[T] {
	return qm.New4x4[T](1, 0, 2, -1, 3, 0, 0, 5, 2, 1, 4, -3, 1, 0, 5, 0)
}

func inverseError2[T lane.Primitive](m qm.Matrix2x2[T]) float64 {
	got, want := m.Inverse().Mul(m).Elements(), qm.Identity2x2[T]().Elements()
	return maxAbsDiff(got[:], want[:])
}

func inverseError3[T lane.Primitive](m qm.Matrix3x3[T]) float64 {
	got, want := m.Inverse().Mul(m).Elements(), qm.Identity3x3[T]().Elements()
	return maxAbsDiff(got[:], want[:])
}

func inverseError4[T lane.Primitive](m qm.Matrix4x4[T]) float64 {
	got, want := m.Inverse().Mul(m).Elements(), qm.Identity4x4[T]().Elements()
	return maxAbsDiff(got[:], want[:])
}

func maxAbsDiff[T lane.Primitive](got, want []T) float64 {
	var d float64
	for i := range got {
		d = math.Max(d, math.Abs(float64(got[i])-float64(want[i])))
	}
	return d
}

// runChecks runs every inverse check concurrently. The results keep the
// order of inverseChecks.
func runChecks(logger *slog.Logger) ([]checkResult, error) {
	results := make([]checkResult, len(inverseChecks))
	var g errgroup.Group
	for i, c := range inverseChecks {
		g.Go(func() error {
			e := c.run()
			results[i] = checkResult{Name: c.name, MaxError: e, Tolerance: c.tol, OK: e <= c.tol}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var failed int
	for _, r := range results {
		logger.Debug("inverse check", "name", r.Name, "max_error", r.MaxError, "ok", r.OK)
		if !r.OK {
			failed++
			logger.Error("inverse check out of tolerance", "name", r.Name, "max_error", r.MaxError, "tolerance", r.Tolerance)
		}
	}
	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(results))
	}
	return results, nil
}
