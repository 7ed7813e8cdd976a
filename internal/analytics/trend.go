package analytics

import (
	"math"
	"sort"
	"time"

	errorvalues "github.com/limbo/ecosaver/internal/error_values"
	"github.com/limbo/ecosaver/pkg/entity"
	"gonum.org/v1/gonum/stat"
)

// MinTrendPoints is the smallest series a trend line is fitted to.
const MinTrendPoints = 3

type Point struct {
	Date  time.Time
	Value float64
}

// Line is a fitted value = Intercept + Slope*day_index.
type Line struct {
	Intercept float64
	Slope     float64
	// Day index of the last observed point
	LastIndex int
}

// At evaluates the line at day index i.
func (l Line) At(i int) float64 {
	return l.Intercept + l.Slope*float64(i)
}

// Next evaluates the line one day after the last observation.
func (l Line) Next() float64 {
	return l.At(l.LastIndex + 1)
}

func ElectricitySeries(records []entity.UsageRecord) []Point {
	series := make([]Point, 0, len(records))
	for _, r := range records {
		series = append(series, Point{Date: r.Date, Value: r.ElectricityUnits})
	}
	return series
}

func WaterSeries(records []entity.UsageRecord) []Point {
	series := make([]Point, 0, len(records))
	for _, r := range records {
		series = append(series, Point{Date: r.Date, Value: float64(r.WaterLiters)})
	}
	return series
}

// sortedByDate returns a copy of series ordered by date. Points sharing a date
// keep their input order.
func sortedByDate(series []Point) []Point {
	sorted := make([]Point, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return entity.Day(sorted[i].Date).Before(entity.Day(sorted[j].Date))
	})
	return sorted
}

// DayIndexes returns the day offset of every point of a date-sorted series
// from its first point.
func DayIndexes(sorted []Point) []int {
	idx := make([]int, len(sorted))
	if len(sorted) == 0 {
		return idx
	}
	first := entity.Day(sorted[0].Date)
	for i, p := range sorted {
		idx[i] = int(math.Round(entity.Day(p.Date).Sub(first).Hours() / 24))
	}
	return idx
}

// FitTrend fits an ordinary least squares line over (day_index, value).
// Duplicate dates are kept as separate points.
func FitTrend(series []Point) (Line, error) {
	if len(series) < MinTrendPoints {
		return Line{}, errorvalues.ErrInsufficientHistory
	}
	sorted := sortedByDate(series)
	idx := DayIndexes(sorted)
	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, p := range sorted {
		xs[i] = float64(idx[i])
		ys[i] = p.Value
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	line := Line{Intercept: alpha, Slope: beta, LastIndex: idx[len(idx)-1]}
	if !finite(alpha) || !finite(beta) || !finite(line.Next()) {
		return Line{}, errorvalues.ErrDegenerateFit
	}
	return line, nil
}

// MeanValue is the arithmetic mean of the series values.
func MeanValue(series []Point) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}
	ys := make([]float64, len(series))
	for i, p := range series {
		ys[i] = p.Value
	}
	m := stat.Mean(ys, nil)
	if !finite(m) {
		return 0, false
	}
	return m, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
