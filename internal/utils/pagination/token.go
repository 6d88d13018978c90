package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	tokenPrefix = "offset"
)

// EncodeToken creates an opaque continuation token for the next page.
func EncodeToken(offset int) string {
	return base64.URLEncoding.EncodeToString([]byte(fmt.Sprintf("%s|%d", tokenPrefix, offset)))
}

// DecodeToken returns the offset carried by token. An empty token is offset 0.
func DecodeToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != tokenPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset)")
	}
	return offset, nil
}

// ClampLimit applies DefaultLimit to non-positive values and caps at MaxLimit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NextToken returns the token for the page after one that returned got items,
// or "" when the page was not full.
func NextToken(offset, limit, got int) string {
	if got < limit {
		return ""
	}
	return EncodeToken(offset + got)
}
