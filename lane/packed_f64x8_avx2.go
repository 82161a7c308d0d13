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

//go:build amd64 && amd64.v3 && !amd64.v4 && goexperiment.simd && !purego

package lane

import "simd/archsimd"

// f64x8 runs an [8]float64 lane as two Float64x4 halves.
func f64x8(op binop, d, x, y *[8]float64) {
	lo := f64x4(op, archsimd.LoadFloat64x4Slice(x[:4]), archsimd.LoadFloat64x4Slice(y[:4]))
	hi := f64x4(op, archsimd.LoadFloat64x4Slice(x[4:]), archsimd.LoadFloat64x4Slice(y[4:]))
	lo.StoreSlice(d[:4])
	hi.StoreSlice(d[4:])
}
