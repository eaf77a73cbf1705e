package resume

import (
	"fmt"
	"os"
	"strings"
)

// readLocalDocument reads a résumé from disk with the same size bound
// as HTTP fetches.
func readLocalDocument(reference string) ([]byte, error) {
	path := strings.TrimPrefix(reference, "file://")

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat local document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("local document %s is a directory", path)
	}
	if info.Size() > maxDocumentBytes {
		return nil, fmt.Errorf("local document %s exceeds %d bytes", path, int64(maxDocumentBytes))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading local document: %w", err)
	}
	return data, nil
}
