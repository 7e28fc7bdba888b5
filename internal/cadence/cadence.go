package cadence

import "context"

// ContinuationToken is an opaque pagination cursor. The zero value means
// "start from the beginning". Tokens are minted by Lister implementations
// and round-tripped by Collect; nothing else should build or inspect one.
type ContinuationToken struct {
	value string
}

// NewContinuationToken wraps a raw service cursor. Intended for Lister
// implementations only.
func NewContinuationToken(value string) ContinuationToken {
	return ContinuationToken{value: value}
}

// IsZero reports whether the token is the start-of-listing cursor.
func (t ContinuationToken) IsZero() bool {
	return t.value == ""
}

// Value returns the raw cursor for handing back to the listing service.
func (t ContinuationToken) Value() string {
	return t.value
}

// ObjectRecord is one stored object as seen by the collector. LastModified
// is the service-provided RFC3339 string, empty when the entry carries no
// modification time (folder markers and the like).
type ObjectRecord struct {
	Key          string
	LastModified string
}

// Page is one response unit from the listing service. Next is meaningful
// only when IsTruncated is true.
type Page struct {
	Objects     []ObjectRecord
	IsTruncated bool
	Next        ContinuationToken
}

// Lister is the listing service contract the collector drives. The S3
// client implements it; tests stub it.
type Lister interface {
	ListPage(ctx context.Context, bucket, prefix string, cursor ContinuationToken) (Page, error)
}
