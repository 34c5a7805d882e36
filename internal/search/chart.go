package search

// Bar is one category of the results chart.
type Bar struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Chart returns the bar series for s: Male, Female, then each age bucket.
func Chart(s Stats) []Bar {
	bars := make([]Bar, 0, 2+numBuckets)
	bars = append(bars, Bar{Name: "Male", Count: s.Male}, Bar{Name: "Female", Count: s.Female})
	for _, b := range Buckets {
		bars = append(bars, Bar{Name: b.String(), Count: s.AgeGroups[b]})
	}
	return bars
}

// MaxCount returns the largest bar value, or 0 for an empty series.
func MaxCount(bars []Bar) int {
	var top int
	for _, b := range bars {
		if b.Count > top {
			top = b.Count
		}
	}
	return top
}
