package extractor

import (
	"fmt"
	"os"
)

// ExtractTxt reads a plain text file as-is.
func ExtractTxt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return truncate(string(data)), nil
}
