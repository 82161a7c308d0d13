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

//go:build purego || !amd64 || !amd64.v3 || !goexperiment.simd

package lane

// Without GOEXPERIMENT=simd and GOAMD64>=v3 there is no archsimd register
// type to hold a lane, so every shape stays a plain array.
const (
	currentLevel = LevelScalar
	currentWidth = 0
)
