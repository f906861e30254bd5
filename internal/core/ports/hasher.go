package ports

// Hasher computes content hashes used for cache invalidation.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Sum returns the hex-encoded SHA-256 digest of data.
	Sum(data []byte) string

	// ContentHash reads the file at path and returns its digest.
	ContentHash(path string) (string, error)
}
