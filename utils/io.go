package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single input line. Puzzle inputs are far below it.
const maxLineSize = 1 << 20

// ReadLines reads r until EOF and returns its lines without line terminators.
// A trailing "\r" is stripped, and a missing final newline is fine.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var ret []string
	for scanner.Scan() {
		ret = append(ret, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fail to scan lines: %w", err)
	}
	return ret, nil
}

// ReadFileLines reads all lines of the file at path.
func ReadFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fail to open %q: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("fail to read %q: %w", path, err)
	}
	return lines, nil
}
