// Package skiplist persists the companies the agent abandoned, one per line.
package skiplist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"job-agent/internal/application/port/output"
)

var _ output.SkipListPort = (*File)(nil)

type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Append adds company as a new line. Existing content is never rewritten.
func (f *File) Append(company string) error {
	company = strings.Join(strings.Fields(company), " ")
	if company == "" {
		return fmt.Errorf("company name is empty")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open skip list: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(company + "\n"); err != nil {
		return fmt.Errorf("append skip list: %w", err)
	}
	return nil
}

// List returns the recorded names in file order. A missing file is an empty list.
func (f *File) List() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open skip list: %w", err)
	}
	defer file.Close()

	var names []string
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read skip list: %w", err)
	}
	return names, nil
}
