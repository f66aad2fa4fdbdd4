package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bookqa"
)

// likeEscaper escapes LIKE wildcards so terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern returns a lower-case substring pattern for use with
// LOWER(column) LIKE ? ESCAPE '\'.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// queryError reports a failed read as EUNAVAILABLE, keeping the driver
// error for logs. Application errors pass through unchanged.
func queryError(op string, err error) error {
	var e *bookqa.Error
	if errors.As(err, &e) {
		return err
	}
	return bookqa.Errorf(bookqa.EUNAVAILABLE, "%s: %v", op, err)
}
