package heatmap

// BucketCount is the number of severity buckets on the heat ramp. Bucket 0
// means no recorded activity; bucket 15 is the hottest key on the board.
const BucketCount = 16

// BucketThresholds holds the upper bound (inclusive) of buckets 1 through 15.
// Together they partition (0, 1]; bands narrow toward 1.0 because most keys
// sit in the low and middle ranges and the interesting differentiation
// happens among the most-used keys. Tuned independently of the bucketing
// logic below.
var BucketThresholds = [BucketCount - 1]float64{
	0.15, 0.27, 0.38, 0.48, 0.57,
	0.65, 0.72, 0.78, 0.83, 0.875,
	0.915, 0.95, 0.975, 0.99, 1.0,
}

// Intensity normalizes a resolved count against the busiest key in the
// snapshot. maxCount is floored at 1 so an empty or all-zero frequency map
// yields 0 everywhere instead of dividing by zero. Result is always in [0, 1].
func Intensity(count, maxCount int64) float64 {
	if count <= 0 {
		return 0
	}
	if maxCount < 1 {
		maxCount = 1
	}
	v := float64(count) / float64(maxCount)
	if v > 1 {
		return 1
	}
	return v
}

// Bucket grades an intensity onto the heat ramp. Exactly zero maps to bucket
// 0; anything in (0, 1] lands in the first band whose upper bound contains
// it. Out-of-range inputs clamp to the nearest bucket.
func Bucket(intensity float64) int {
	if intensity <= 0 {
		return 0
	}
	for i, upper := range BucketThresholds {
		if intensity <= upper {
			return i + 1
		}
	}
	return BucketCount - 1
}
