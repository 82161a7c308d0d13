//go:build !amd64 && !arm64

package lane

import "runtime"

func hostFeatures() Features {
	return Features{Architecture: runtime.GOARCH}
}
