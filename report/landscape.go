package report

import (
	"math"

	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/pipeline"
)

// Point is one entry of the landscape scatter plot. The query point comes
// first with type "query"; candidates are "relevant" or "background"
// depending on whether they cleared the relevance threshold.
type Point struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Type       string  `json:"type"`
	Label      string  `json:"label"`
	Similarity float64 `json:"similarity"`
}

const powerIterations = 100

// LandscapeMap projects the topic and candidate embeddings to 2D via PCA
// (mean-center, then the top two principal directions by power iteration).
// Returns nil when there is nothing to plot.
func LandscapeMap(run *pipeline.Run) []Point {
	if len(run.TopicVector) == 0 {
		return nil
	}

	candidates := make([]*core.Candidate, 0, len(run.Comparisons)+len(run.Excluded))
	candidates = append(candidates, run.Comparisons...)
	candidates = append(candidates, run.Excluded...)

	rows := make([][]float64, 0, len(candidates)+1)
	rows = append(rows, toFloat64(run.TopicVector))
	kept := make([]*core.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if len(candidate.Vector) != len(run.TopicVector) {
			continue
		}
		rows = append(rows, toFloat64(candidate.Vector))
		kept = append(kept, candidate)
	}
	if len(kept) == 0 {
		return nil
	}

	center(rows)

	first := principalComponent(rows)
	xs := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = dot(row, first)
	}

	deflate(rows, first)
	second := principalComponent(rows)
	ys := make([]float64, len(rows))
	for i, row := range rows {
		ys[i] = dot(row, second)
	}

	points := make([]Point, 0, len(rows))
	points = append(points, Point{
		X:          xs[0],
		Y:          ys[0],
		Type:       "query",
		Label:      "Your Topic",
		Similarity: 1.0,
	})

	for i, candidate := range kept {
		pointType := "relevant"
		if candidate.BelowThreshold {
			pointType = "background"
		}
		points = append(points, Point{
			X:          xs[i+1],
			Y:          ys[i+1],
			Type:       pointType,
			Label:      truncateTitle(candidate.Title),
			Similarity: math.Round(candidate.Score*1000) / 1000,
		})
	}
	return points
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// center subtracts the column mean from every row in place.
func center(rows [][]float64) {
	dim := len(rows[0])
	mean := make([]float64, dim)
	for _, row := range rows {
		for j, x := range row {
			mean[j] += x
		}
	}
	for j := range mean {
		mean[j] /= float64(len(rows))
	}
	for _, row := range rows {
		for j := range row {
			row[j] -= mean[j]
		}
	}
}

// principalComponent finds the dominant principal direction of the centered
// rows by power iteration on the implicit covariance matrix. The start
// vector is fixed so output is deterministic for identical input.
func principalComponent(rows [][]float64) []float64 {
	dim := len(rows[0])
	v := make([]float64, dim)
	for j := range v {
		v[j] = 1 / math.Sqrt(float64(dim))
	}

	for iter := 0; iter < powerIterations; iter++ {
		next := make([]float64, dim)
		for _, row := range rows {
			d := dot(row, v)
			for j, x := range row {
				next[j] += d * x
			}
		}
		n := norm(next)
		if n == 0 {
			return v
		}
		for j := range next {
			next[j] /= n
		}
		v = next
	}
	return v
}

// deflate removes the component along direction from every row in place, so
// the next power iteration converges to the second principal direction.
func deflate(rows [][]float64, direction []float64) {
	for _, row := range rows {
		d := dot(row, direction)
		for j := range row {
			row[j] -= d * direction[j]
		}
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}
