package embryogen

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageKind distinguishes the three raw volumetric buffers a round can
// produce plus the optional composited preview, per SPEC_FULL.md §6.
type ImageKind int

const (
	ImageMask ImageKind = iota
	ImagePhantom
	ImageOptics
	ImageFinalPreview
)

// Image3D is a flat voxel buffer over a fixed Size; Mask uses uint16 counts
// (agent id + 1, 0 meaning background, matching the original's instance-mask
// convention), Phantom/Optics use float32 intensities.
type Image3D struct {
	Size   Vec3[int]
	Mask   []uint16
	Phantom []float32
	Optics []float32
}

func NewImage3D(size Vec3[int]) *Image3D {
	n := size.X * size.Y * size.Z
	return &Image3D{
		Size:    size,
		Mask:    make([]uint16, n),
		Phantom: make([]float32, n),
		Optics:  make([]float32, n),
	}
}

func (img *Image3D) index(p Vec3[int]) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.Z < 0 || p.X >= img.Size.X || p.Y >= img.Size.Y || p.Z >= img.Size.Z {
		return 0, false
	}
	return (p.Z*img.Size.Y+p.Y)*img.Size.X + p.X, true
}

// RenderSphereMask stamps agentID+1 into every voxel within radius of centre,
// the volumetric equivalent of Spheres::renderIntoMask.
func (img *Image3D) RenderSphereMask(centre Vec3[float64], radius float64, agentID int, res Resolution, off Offset) {
	c := MicronsToPixels(centre, res, off)
	rPx := int(radius * res.X) + 1
	for dz := -rPx; dz <= rPx; dz++ {
		for dy := -rPx; dy <= rPx; dy++ {
			for dx := -rPx; dx <= rPx; dx++ {
				p := Vec3[int]{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
				um := PixelsToMicrons(p, res, off)
				if um.Sub(centre).Len2() > radius*radius {
					continue
				}
				idx, ok := img.index(p)
				if !ok {
					continue
				}
				img.Mask[idx] = uint16(agentID + 1)
			}
		}
	}
}

// MaxReduceFrameCounts mirrors the Director's MAX-reduction over how many
// frames each FrontOfficer believes have been rendered so far, delegating to
// transport.go's MaxReduce.
func MaxReduceFrameCounts(counts []int) int { return MaxReduce(counts) }

// FrameSink receives a completed Image3D for one simulation frame. TIFF
// encoding and datastore upload are out of core scope (SPEC_FULL.md §6); the
// implementation below wraps another FrameSink.
type FrameSink interface {
	WriteFrame(kind ImageKind, frameIdx int, img *Image3D) error
}

// previewFrameSink passes every frame on to next; for an ImageOptics frame it
// also renders the mid-Z slice of the Optics buffer as a grayscale RGBA image
// and rescales it with golang.org/x/image/draw. The Mask and Phantom buffers
// are not used, and the preview image is not written anywhere.
type previewFrameSink struct {
	next FrameSink
}

func NewPreviewFrameSink(next FrameSink) FrameSink {
	return &previewFrameSink{next: next}
}

func (s *previewFrameSink) WriteFrame(kind ImageKind, frameIdx int, img *Image3D) error {
	if err := s.next.WriteFrame(kind, frameIdx, img); err != nil {
		return fmt.Errorf("previewFrameSink.WriteFrame(): %w", err)
	}
	if kind != ImageOptics {
		return nil
	}

	w, h := img.Size.X, img.Size.Y
	zMid := img.Size.Z / 2
	preview := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx, ok := img.index(Vec3[int]{X: x, Y: y, Z: zMid})
			if !ok {
				continue
			}
			v := uint8(clampFloat(img.Optics[idx]*255, 0, 255))
			preview.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), preview, preview.Bounds(), draw.Over, nil)
	return nil
}

func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
