package theme

import (
	"fmt"
	"image"
	"os"
	"sort"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/floats"
)

const (
	// sampleEdge bounds the working image; quantization quality barely
	// changes past 64px but cost grows quadratically.
	sampleEdge = 64
	// PaletteSize is how many dominant colors extraction aims for.
	PaletteSize  = 5
	kmeansRounds = 16
)

// FromImage extracts the dominant-color palette from the image at path.
// Colors come back as #rrggbb hex, most dominant first. Callers feed the
// result to Theme.ApplyPalette and treat any error as "leave theme alone".
func FromImage(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return ExtractPalette(img, PaletteSize)
}

// ExtractPalette quantizes img down to k dominant colors using k-means in
// CIE-Lab space, where euclidean distance tracks perceived difference.
// Initial centroids are luminance quantiles, so the result is
// deterministic for a given image.
func ExtractPalette(img image.Image, k int) ([]string, error) {
	if k < 1 {
		return nil, fmt.Errorf("palette size must be positive, got %d", k)
	}
	points := samplePixels(img)
	if len(points) < k {
		return nil, fmt.Errorf("image has only %d usable pixels, need %d", len(points), k)
	}

	centroids := seedCentroids(points, k)
	assign := make([]int, len(points))
	for round := 0; round < kmeansRounds; round++ {
		moved := false
		for i, p := range points {
			best := nearestCentroid(centroids, p)
			if assign[i] != best {
				assign[i] = best
				moved = true
			}
		}
		if round > 0 && !moved {
			break
		}
		recomputeCentroids(centroids, points, assign)
	}

	// Rank clusters by population, dominant first.
	counts := make([]int, k)
	for _, a := range assign {
		counts[a]++
	}
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	var palette []string
	seen := make(map[string]bool)
	for _, ci := range order {
		if counts[ci] == 0 {
			continue
		}
		c := colorful.Lab(centroids[ci][0], centroids[ci][1], centroids[ci][2]).Clamped()
		hex := c.Hex()
		if seen[hex] {
			continue // flat images collapse clusters; report each color once
		}
		seen[hex] = true
		palette = append(palette, hex)
	}
	return palette, nil
}

// samplePixels downscales img to at most sampleEdge per side and returns
// its pixels as Lab coordinates.
func samplePixels(img image.Image) [][3]float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	if w > sampleEdge || h > sampleEdge {
		scale := float64(sampleEdge) / float64(max(w, h))
		sw, sh := max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
		small := image.NewRGBA(image.Rect(0, 0, sw, sh))
		xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)
		img = small
		b = small.Bounds()
	}

	points := make([][3]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue // fully transparent pixel
			}
			l, a, bb := c.Lab()
			points = append(points, [3]float64{l, a, bb})
		}
	}
	return points
}

// seedCentroids spreads the initial centroids along the luminance axis:
// sort by L and take k quantiles.
func seedCentroids(points [][3]float64, k int) [][3]float64 {
	byLum := make([][3]float64, len(points))
	copy(byLum, points)
	sort.Slice(byLum, func(i, j int) bool { return byLum[i][0] < byLum[j][0] })

	centroids := make([][3]float64, k)
	for i := 0; i < k; i++ {
		idx := (2*i + 1) * len(byLum) / (2 * k)
		centroids[i] = byLum[idx]
	}
	return centroids
}

func nearestCentroid(centroids [][3]float64, p [3]float64) int {
	best, bestDist := 0, 0.0
	for i, c := range centroids {
		d := floats.Distance(c[:], p[:], 2)
		if i == 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func recomputeCentroids(centroids, points [][3]float64, assign []int) {
	sums := make([][3]float64, len(centroids))
	counts := make([]int, len(centroids))
	for i, p := range points {
		a := assign[i]
		floats.Add(sums[a][:], p[:])
		counts[a]++
	}
	for i := range centroids {
		if counts[i] == 0 {
			continue // empty cluster keeps its previous centroid
		}
		floats.Scale(1/float64(counts[i]), sums[i][:])
		centroids[i] = sums[i]
	}
}
