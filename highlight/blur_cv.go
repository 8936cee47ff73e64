//go:build withcv
// +build withcv

package highlight

import (
	"image"
	"unsafe"

	"gocv.io/x/gocv"
)

// float32SliceToBytes reinterprets a []float32 plane as the raw []byte
// buffer gocv.NewMatFromBytes expects for a CV_32F mat, avoiding a
// per-pixel copy.
func float32SliceToBytes(plane []float32) []byte {
	if len(plane) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&plane[0])), len(plane)*4)
}

// blurPlane is the Gaussian blur entry point used by Usm in withcv builds.
// It performs the same radius-2, sigma-1.0 Gaussian blur as
// blurPlanePortable but offloads the convolution to OpenCV via gocv,
// mirroring the cgo-accelerated/portable split the filter package uses for
// its motion detectors (gocv.Mat construction, manual Close()).
func blurPlane(plane []float32, width, height int) []float32 {
	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV32F, float32SliceToBytes(plane))
	if err != nil {
		return blurPlanePortable(plane, width, height)
	}
	defer mat.Close()

	out := gocv.NewMat()
	defer out.Close()

	ksize := image.Pt(2*blurRadius+1, 2*blurRadius+1)
	gocv.GaussianBlur(mat, &out, ksize, blurSigma, blurSigma, gocv.BorderReplicate)

	result, err := out.DataPtrFloat32()
	if err != nil {
		return blurPlanePortable(plane, width, height)
	}
	dst := make([]float32, len(result))
	copy(dst, result)
	return dst
}
