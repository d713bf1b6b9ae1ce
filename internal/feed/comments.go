package feed

const CommentsBatchSize = 3

// LoadMoreComments returns how many comments the next batch should fetch,
// given the post's comment count and how many are already loaded.
func LoadMoreComments(commentCount, loaded int) int {
	remaining := commentCount - loaded
	if remaining > CommentsBatchSize {
		return CommentsBatchSize
	}
	if remaining < 0 {
		return 0
	}
	return remaining
}
