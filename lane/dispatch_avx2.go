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

// GOAMD64=v3 guarantees AVX2 at startup (the runtime refuses to run
// otherwise), so the 256-bit kernels are safe to use unconditionally.
const (
	currentLevel = LevelAVX2
	currentWidth = 32
)
