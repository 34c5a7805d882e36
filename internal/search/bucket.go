package search

// AgeBucket is one of the seven fixed half-open age ranges.
type AgeBucket int

const (
	AgeUnder18 AgeBucket = iota
	Age18to24
	Age25to34
	Age35to44
	Age45to54
	Age55to64
	Age65Plus

	numBuckets
)

// Buckets lists every bucket in display order.
var Buckets = [numBuckets]AgeBucket{AgeUnder18, Age18to24, Age25to34, Age35to44, Age45to54, Age55to64, Age65Plus}

var bucketLabels = [numBuckets]string{"0-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

// upper bounds, exclusive; the last bucket is open-ended.
var bucketBounds = [numBuckets - 1]int{18, 25, 35, 45, 55, 65}

// String returns the bucket label, e.g. "25-34".
func (b AgeBucket) String() string {
	if b < 0 || b >= numBuckets {
		return "unknown"
	}
	return bucketLabels[b]
}

// BucketFor returns the bucket containing age. Ranges are left-closed, so 18
// falls in 18-24.
func BucketFor(age int) AgeBucket {
	for i, upper := range bucketBounds {
		if age < upper {
			return AgeBucket(i)
		}
	}
	return Age65Plus
}
