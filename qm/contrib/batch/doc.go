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


// Package batch applies quickmath vectors and matrices to many points held as
// structure-of-arrays columns: one slice per component.
//
// # Transform API
//
// The Transform functions multiply every point by a matrix. They process as
// many points as the shortest column holds and return that count:
//   - Transform2(m Matrix2x2[T], dst, src [2][]T) int
//   - Transform3(m Matrix3x3[T], dst, src [3][]T) int
//   - Transform4(m Matrix4x4[T], dst, src [4][]T) int
//
// dst may alias src.
//
// # Block kernels
//
// The float64 block kernels run on github.com/cwbudde/algo-vecmath, which
// selects an SSE2, AVX2 or NEON implementation at run time. All slices passed
// to one call must have the same length:
//   - Lengths2, LengthsSquared2: per-point length of 2D points
//   - MulComponents, ScaleComponents: element-wise products
//   - TransformBlock2/3/4: matrix transform of whole columns
//
// # Packing
//
// Pack and Unpack convert between []qm.Vector and columns.
//
// # Example Usage
//
//	xs := []float64{3, 6}
//	ys := []float64{4, 8}
//	lengths := make([]float64, 2)
//	batch.Lengths2(lengths, xs, ys) // [5 10]
//
//	rot := qm.New2x2(0.0, -1.0, 1.0, 0.0)
//	batch.Transform2(rot, [2][]float64{xs, ys}, [2][]float64{xs, ys})
package batch
