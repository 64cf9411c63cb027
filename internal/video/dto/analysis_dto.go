package dto

type AnalysisInput struct {
	From string // YYYY-MM-DD, optional
	Unit string // day, month or year; defaults to day
}

type ViewPoint struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

type CommentPoint struct {
	Date     string `json:"date"`
	Comments int64  `json:"comments"`
}

type ReactionPoint struct {
	Date     string `json:"date"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

// AnalysisOutput keys follow the public API contract, hence videoReactions.
type AnalysisOutput struct {
	Views          []ViewPoint     `json:"views"`
	Comments       []CommentPoint  `json:"comments"`
	VideoReactions []ReactionPoint `json:"videoReactions"`
}
