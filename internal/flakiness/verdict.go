package flakiness

// Verdict is the outcome of comparing a screenshot against its golden.
type Verdict int

const (
	// VerdictPass means the diff is empty or below the noise floor.
	VerdictPass Verdict = iota
	// VerdictRetry means the diff is small enough to be flaky; capture again.
	VerdictRetry
	// VerdictFail means the diff is a real change.
	VerdictFail
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictRetry:
		return "retry"
	default:
		return "fail"
	}
}

// Evaluate classifies a diff of changedPixels out of totalPixels found on the
// given zero-based attempt.
func (c RetryConfig) Evaluate(changedPixels, totalPixels, attempt int) Verdict {
	if changedPixels <= 0 || changedPixels < c.MinChangedPixelCount {
		return VerdictPass
	}
	if attempt >= c.MaxAutoRetries {
		return VerdictFail
	}

	fraction := 1.0
	if totalPixels > 0 {
		fraction = float64(changedPixels) / float64(totalPixels)
	}
	if fraction <= c.MaxChangedPixelFractionToRetry {
		return VerdictRetry
	}
	return VerdictFail
}
