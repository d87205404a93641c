package dto

// TokenResponse carries a freshly issued token
type TokenResponse struct {
	Token string `json:"token"`
}

// ExistsResult is the body of an existence probe. It is always a success
// response, even when the resource is absent.
type ExistsResult struct {
	Result bool `json:"result"`
}

// MessageResponse carries an informational message, e.g. the duplicate
// user notice.
type MessageResponse struct {
	Message string `json:"message"`
}

// InsertResult acknowledges a single-document insert. The field names
// follow the wire contract the previous store driver exposed to clients.
type InsertResult struct {
	Acknowledged bool  `json:"acknowledged"`
	InsertedID   int64 `json:"insertedId"`
}

// DeleteResult acknowledges a single-document delete. DeletedCount is 0
// when no document matched; that is not an error.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResult acknowledges a merge-set update
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
