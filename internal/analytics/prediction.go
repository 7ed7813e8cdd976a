package analytics

// Source tags which strategy produced a prediction.
type Source string

const (
	SourceUserTrend   Source = "user_trend"
	SourceGlobalTrend Source = "global_trend"
	SourceGlobalMean  Source = "global_mean"
	SourceLatest      Source = "latest"
	SourceNone        Source = "none"
)

// Prediction is a next-day estimate. When Available is false Value is meaningless.
type Prediction struct {
	Value     float64 `json:"value"`
	Available bool    `json:"available"`
	Source    Source  `json:"source"`
}

// Unavailable is the prediction of an empty fallback chain.
var Unavailable = Prediction{Source: SourceNone}

// Strategy produces a prediction or reports that it has none.
type Strategy func() Prediction

// TrendStrategy predicts with an OLS line over series.
func TrendStrategy(series []Point, src Source) Strategy {
	return func() Prediction {
		line, err := FitTrend(series)
		if err != nil {
			return Unavailable
		}
		return Prediction{Value: line.Next(), Available: true, Source: src}
	}
}

// MeanStrategy predicts the arithmetic mean of series.
func MeanStrategy(series []Point, src Source) Strategy {
	return func() Prediction {
		m, ok := MeanValue(series)
		if !ok {
			return Unavailable
		}
		return Prediction{Value: m, Available: true, Source: src}
	}
}

// ConstantStrategy always predicts v.
func ConstantStrategy(v float64, src Source) Strategy {
	return func() Prediction {
		return Prediction{Value: v, Available: true, Source: src}
	}
}

// Chain tries strategies in order and returns the first available prediction.
func Chain(strategies ...Strategy) Prediction {
	for _, s := range strategies {
		if p := s(); p.Available {
			return p
		}
	}
	return Unavailable
}

// GlobalPrediction predicts from a pooled series: trend, then mean.
func GlobalPrediction(pool []Point) Prediction {
	return Chain(
		TrendStrategy(pool, SourceGlobalTrend),
		MeanStrategy(pool, SourceGlobalMean),
	)
}

// UserPrediction predicts a user's next day, falling back to the pool.
func UserPrediction(user, pool []Point) Prediction {
	return Chain(
		TrendStrategy(user, SourceUserTrend),
		TrendStrategy(pool, SourceGlobalTrend),
		MeanStrategy(pool, SourceGlobalMean),
	)
}
