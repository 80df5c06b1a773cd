package lib

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

type ProcessCallback[T any] func(record T) error

// ReadLines calls callback for every line of r, stopping at the first error.
func ReadLines(r io.Reader, callback ProcessCallback[string]) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := callback(scanner.Text()); err != nil {
			return fmt.Errorf("callback error: %w", err)
		}
	}
	return scanner.Err()
}

func StreamLines(filePath string, callback ProcessCallback[string]) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return ReadLines(file, callback)
}
