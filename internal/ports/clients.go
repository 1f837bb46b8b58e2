package ports

import "context"

// MetadataClient defines the client port for the instance metadata endpoint.
// Implemented by the IMDS adapter; called by the application layer.
// Methods map 1:1 to the IMDSv2 request sequence: obtain a session token,
// then fetch individual facts with it.
type MetadataClient interface {
	// GetToken obtains a short-lived session token for metadata requests.
	GetToken(ctx context.Context) (string, error)

	// GetFact retrieves a single metadata fact by path (e.g. "instance-id")
	// using a previously obtained token. The returned value is the raw
	// body with surrounding whitespace trimmed.
	GetFact(ctx context.Context, token, path string) (string, error)
}
