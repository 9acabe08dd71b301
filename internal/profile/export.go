package profile

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Export renders username's stored profile as pretty-printed JSON in the
// persisted shape. It fails with ErrNothingToExport when the profile is
// missing or has no history.
func (s *Store) Export(ctx context.Context, username string) ([]byte, error) {
	p, ok := s.Profile(ctx, username)
	if !ok || len(p.History) == 0 {
		return nil, ErrNothingToExport
	}
	b, err := encodeJSON(p, "  ")
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	return b, nil
}

var filenameReplacer = strings.NewReplacer("/", "_", `\`, "_", " ", "_")

// ExportFilename returns the download name for an export taken at now.
func ExportFilename(username string, now time.Time) string {
	return fmt.Sprintf("valorant-analysis-%s-%d.json", filenameReplacer.Replace(username), now.UnixMilli())
}
