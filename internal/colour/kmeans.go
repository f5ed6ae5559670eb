package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// KMeansExtractor implements color extraction using k-means++ clustering.
// Distances are measured in Lab so clusters follow perceived difference.
type KMeansExtractor struct {
	maxIterations int
	maxSamples    int
	convergence   float64
	seed          uint64
}

// NewKMeansExtractor creates a new KMeansExtractor. The same seed always
// produces the same palette for the same image.
func NewKMeansExtractor(seed uint64) *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		maxSamples:    4000,
		convergence:   0.001,
		seed:          seed,
	}
}

type cluster struct {
	centre colorful.Color
	size   int
}

// Extract extracts colors from an image using k-means clustering.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", count)
	}

	points := e.sample(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	unique := dedupe(points)
	if count >= len(unique) {
		out := make([]RGB, len(unique))
		for i, c := range unique {
			out[i] = toRGBValue(c)
		}
		return out, nil
	}

	rng := rand.New(rand.NewPCG(e.seed, e.seed^0x9e3779b97f4a7c15))
	clusters := e.cluster(points, count, rng)

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].size > clusters[j].size
	})

	out := make([]RGB, len(clusters))
	for i, c := range clusters {
		out[i] = toRGBValue(c.centre)
	}
	return out, nil
}

// sample grid-samples the image down to roughly maxSamples pixels.
func (e *KMeansExtractor) sample(img image.Image) []colorful.Color {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 {
		return nil
	}

	step := max(int(math.Sqrt(float64(total)/float64(e.maxSamples))), 1)
	points := make([]colorful.Color, 0, min(total, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent.
				continue
			}
			points = append(points, c)
		}
	}
	return points
}

func (e *KMeansExtractor) cluster(points []colorful.Color, k int, rng *rand.Rand) []cluster {
	centres := seedCentres(points, k, rng)
	assignments := make([]int, len(points))

	for range e.maxIterations {
		for i, p := range points {
			assignments[i] = nearest(p, centres)
		}

		next := make([]colorful.Color, k)
		counts := make([]int, k)
		sums := make([][3]float64, k)
		for i, p := range points {
			l, a, b := p.Lab()
			c := assignments[i]
			sums[c][0] += l
			sums[c][1] += a
			sums[c][2] += b
			counts[c]++
		}

		moved := 0.0
		for i := range k {
			if counts[i] == 0 {
				next[i] = points[rng.IntN(len(points))]
			} else {
				n := float64(counts[i])
				next[i] = colorful.Lab(sums[i][0]/n, sums[i][1]/n, sums[i][2]/n)
			}
			moved += centres[i].DistanceLab(next[i])
		}
		centres = next

		if moved/float64(k) < e.convergence {
			break
		}
	}

	clusters := make([]cluster, k)
	for i := range centres {
		clusters[i].centre = centres[i].Clamped()
	}
	for _, p := range points {
		clusters[nearest(p, centres)].size++
	}
	return clusters
}

// seedCentres picks initial centres with k-means++ weighting.
func seedCentres(points []colorful.Color, k int, rng *rand.Rand) []colorful.Color {
	centres := make([]colorful.Color, 0, k)
	centres = append(centres, points[rng.IntN(len(points))])

	dist := make([]float64, len(points))
	for len(centres) < k {
		total := 0.0
		for i, p := range points {
			d := p.DistanceLab(centres[nearest(p, centres)])
			dist[i] = d * d
			total += dist[i]
		}

		if total == 0 {
			centres = append(centres, centres[len(centres)-1])
			continue
		}

		target := rng.Float64() * total
		pick := len(points) - 1
		for i, d := range dist {
			target -= d
			if target <= 0 {
				pick = i
				break
			}
		}
		centres = append(centres, points[pick])
	}
	return centres
}

func nearest(p colorful.Color, centres []colorful.Color) int {
	best, bestDist := 0, math.MaxFloat64
	for i, c := range centres {
		if d := p.DistanceLab(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// dedupe returns the distinct colours of points, most frequent first.
func dedupe(points []colorful.Color) []colorful.Color {
	counts := make(map[RGB]int)
	out := make([]colorful.Color, 0)
	for _, p := range points {
		key := toRGBValue(p)
		if counts[key] == 0 {
			out = append(out, p)
		}
		counts[key]++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return counts[toRGBValue(out[i])] > counts[toRGBValue(out[j])]
	})
	return out
}

func toRGBValue(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
