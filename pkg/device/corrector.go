package device

// Bucket is a coarse screen height class
type Bucket int

const (
	BucketUnknown Bucket = iota
	BucketCompact        // Home button phones (SE)
	BucketMid            // Notched 5.4"-5.8" phones
	BucketStandard       // 6.1" phones
	BucketPlus           // Plus / Pro Max phones
)

// Upper height bounds, in points, for each bucket
const (
	compactMaxHeight  = 700
	midMaxHeight      = 812
	standardMaxHeight = 852
)

// topMarginCorrection nudges the top margin fraction per bucket. The clock
// and the bottom icon row don't scale linearly with screen height, so the
// same percentage lands text a little too high on short screens and a
// little too low on tall ones. Heuristic values, recalibrate as needed.
var topMarginCorrection = map[Bucket]float64{
	BucketCompact:  0.95,
	BucketMid:      1.03,
	BucketStandard: 1.00,
	BucketPlus:     0.97,
}

// BucketForHeight classifies a screen height in points.
func BucketForHeight(heightPoints float64) Bucket {
	switch {
	case heightPoints <= 0:
		return BucketUnknown
	case heightPoints <= compactMaxHeight:
		return BucketCompact
	case heightPoints <= midMaxHeight:
		return BucketMid
	case heightPoints <= standardMaxHeight:
		return BucketStandard
	default:
		return BucketPlus
	}
}

// CorrectionFactor returns the multiplier applied to the top margin for the
// bucket. Unknown buckets are not corrected.
func CorrectionFactor(b Bucket) float64 {
	if factor, ok := topMarginCorrection[b]; ok {
		return factor
	}
	return 1.0
}

// CorrectTopMargin applies the bucket correction to a base top margin
// fraction of the canvas height.
func CorrectTopMargin(baseFraction float64, b Bucket) float64 {
	return baseFraction * CorrectionFactor(b)
}

func (b Bucket) String() string {
	switch b {
	case BucketCompact:
		return "compact"
	case BucketMid:
		return "mid"
	case BucketStandard:
		return "standard"
	case BucketPlus:
		return "plus"
	default:
		return "unknown"
	}
}
