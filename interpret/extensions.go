package interpret

// Intervals that may surface as altered or added tones.
var extensionCandidates = []int{
	minorSecond,
	majorSecond,
	augmentedSecond,
	perfectFourth,
	augmentedFourth,
	minorSixth,
	augmentedSixth,
}

type notation int

const (
	// modifier notation is used once a seventh is present: "♭9", "♯11".
	modifier notation = iota
	// added notation is used without a seventh: "add9".
	added
)

type extensionResult struct {
	prefix     string
	extensions []string
	degrees    DegreeTable
}

// applyExtensions names the tones the chord type leaves unexplained. Each
// rule is checked on its own, so several may fire.
func applyExtensions(b *Buckets, q Quality, mode notation, degrees DegreeTable) extensionResult {
	res := extensionResult{degrees: degrees, extensions: []string{}}

	present := make(map[int]bool, len(extensionCandidates))
	for _, interval := range extensionCandidates {
		if b.has(interval) {
			present[interval] = true
		}
	}
	if len(present) == 0 {
		return res
	}

	ext := res.extensions

	if present[diminishedFifth] && q != Diminished && q != Augmented && !b.has(perfectFifth) {
		res.degrees = res.degrees.With(diminishedFifth, Fifth)
		if mode == modifier {
			ext = append(ext, "♭5")
		} else {
			res.prefix += "♭5"
		}
	}

	if present[minorSecond] {
		ext = append(ext, "♭9")
	}

	if present[majorSecond] && q != Suspended2 {
		switch {
		case mode == modifier &&
			(b.has(minorSecond) || b.has(augmentedSecond)) &&
			(b.has(perfectFourth) || b.has(majorSixth)):
			ext = append(ext, "♮9")
		case mode == added && !b.has(majorSixth):
			// 6/9 already names the ninth
			ext = append(ext, "9")
		}
	}

	if present[augmentedSecond] && b.has(majorThird) {
		ext = append(ext, "♯9")
	}

	if present[perfectFourth] && q != Suspended4 {
		switch {
		case mode == modifier && b.has(augmentedFourth) && b.has(majorSixth) && q != Diminished:
			ext = append(ext, "♮11")
		case mode == added:
			ext = append(ext, "11")
		}
	}

	if present[augmentedFourth] && q != Diminished && (b.has(perfectFifth) || q == Augmented) {
		ext = append(ext, "♯11")
	}

	if present[minorSixth] && b.has(perfectFifth) {
		if mode == modifier || b.has(majorSixth) {
			ext = append(ext, "♭13")
		}
	}

	if present[augmentedSixth] && b.has(majorSeventh) {
		ext = append(ext, "♯13")
		res.degrees = res.degrees.With(augmentedSixth, Sixth)
	}

	if mode == added && len(ext) > 0 {
		res.prefix += "add"
	}
	res.extensions = ext
	return res
}
