package loader

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/minio/highwayhash"
)

// workbookHashKey is the fixed 32-byte HighwayHash key. A fixed key keeps a
// file's hash stable across sessions so the frontend can tell a reload of an
// unchanged file from a new workbook.
var workbookHashKey = []byte("sheetlens-workbook-hash-key-0001")

// HashWorkbookFile returns the HighwayHash content hash of a workbook file,
// hex encoded.
func HashWorkbookFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash, err := highwayhash.New(workbookHashKey)
	if err != nil {
		return "", fmt.Errorf("create hash: %w", err)
	}
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
