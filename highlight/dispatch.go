//go:build !withcv
// +build !withcv

package highlight

// blurPlane is the Gaussian blur entry point used by Usm. The portable
// build always uses the pure-Go implementation.
func blurPlane(plane []float32, width, height int) []float32 {
	return blurPlanePortable(plane, width, height)
}
