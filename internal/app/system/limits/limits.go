// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBody caps partner, patch and request bodies. A full profile is
	// well under 4 KB.
	MaxJSONBody = 64 << 10 // 64 KB
)
