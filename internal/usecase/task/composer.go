// Package task assembles the natural-language task handed to the agent.
package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"job-agent/internal/domain/entity"
	"job-agent/internal/infrastructure/prompts"
)

const profileHeader = "\n\nHere is the candidate profile data in JSON format:\n"

// Paths locates the composer's inputs. Instructions and Profile are optional.
type Paths struct {
	Resume       string
	SkipList     string
	Instructions string
	Profile      string
}

func DefaultPaths(baseDir string) Paths {
	return Paths{
		Resume:       filepath.Join(baseDir, "resume", "resume.pdf"),
		SkipList:     filepath.Join(baseDir, "problematic_sites.txt"),
		Instructions: filepath.Join(baseDir, "instructions.txt"),
		Profile:      filepath.Join(baseDir, "instructions.json"),
	}
}

type Composer struct {
	paths        Paths
	jobSearchURL string
}

func NewComposer(paths Paths, jobSearchURL string) *Composer {
	return &Composer{paths: paths, jobSearchURL: jobSearchURL}
}

// Compose returns the task text for mode. File content is included verbatim.
func (c *Composer) Compose(mode entity.Mode) (string, error) {
	if mode != entity.ModeApplying {
		return "", fmt.Errorf("%w: %q", entity.ErrUnsupportedMode, mode)
	}

	prefix, err := prompts.RenderApplying(prompts.ApplyingData{
		JobSearchURL: c.jobSearchURL,
		ResumePath:   c.paths.Resume,
		SkipListPath: c.paths.SkipList,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	instructions, err := c.instructions()
	if err != nil {
		return "", err
	}

	profile, err := c.profile()
	if err != nil {
		return "", err
	}

	return prefix + instructions + profile, nil
}

// AvailableFiles lists the files the agent may upload or write.
func (c *Composer) AvailableFiles() []string {
	return []string{c.paths.Resume, c.paths.SkipList}
}

func (c *Composer) instructions() (string, error) {
	data, ok, err := readOptional(c.paths.Instructions)
	if err != nil || !ok {
		return "", err
	}
	return "\n\n" + strings.TrimSpace(string(data)) + "\n\n", nil
}

// profile re-emits the JSON compactly, keeping key order and non-ASCII text as written.
func (c *Composer) profile() (string, error) {
	data, ok, err := readOptional(c.paths.Profile)
	if err != nil || !ok {
		return "", err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, bytes.TrimSpace(data)); err != nil {
		return "", fmt.Errorf("candidate profile %s: %w", c.paths.Profile, err)
	}
	return profileHeader + buf.String(), nil
}

func readOptional(path string) ([]byte, bool, error) {
	if path == "" {
		return nil, false, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	return data, true, nil
}
