package mend

// replacement is one pending textual substitution, by byte span.
type replacement struct {
	start, end int
	text       string
}

// spliceAll applies replacements back-to-front so earlier offsets stay
// valid. Spans must be non-overlapping and ordered by start.
func spliceAll(src string, repls []replacement) string {
	for i := len(repls) - 1; i >= 0; i-- {
		r := repls[i]
		src = src[:r.start] + r.text + src[r.end:]
	}

	return src
}
