package movies

import (
	"encoding/json"
)

// Review is one entry in a movie's review log.
type Review struct {
	Rating float64 `json:"rating"`
	Review string  `json:"review"`
}

// DecodeReviews parses the stored review blob. Anything that does not parse
// as a review array is treated as an empty log.
func DecodeReviews(blob string) []Review {
	if blob == "" {
		return []Review{}
	}
	var reviews []Review
	if err := json.Unmarshal([]byte(blob), &reviews); err != nil || reviews == nil {
		return []Review{}
	}
	return reviews
}

// EncodeReviews serializes a review log back into the stored text form.
func EncodeReviews(reviews []Review) string {
	if reviews == nil {
		reviews = []Review{}
	}
	data, _ := json.Marshal(reviews)
	return string(data)
}

// AppendReview adds one entry to the end of the stored log. Insertion order
// is preserved; there is no dedup and no cap on length.
func AppendReview(blob string, rating float64, text string) string {
	reviews := DecodeReviews(blob)
	reviews = append(reviews, Review{Rating: rating, Review: text})
	return EncodeReviews(reviews)
}
