// Package fsjson is the file-access layer: UTF-8 JSON documents read
// and written whole, plus the directory and template plumbing around
// them. It knows nothing about the domain types it moves.
package fsjson

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
)

// Load reads a JSON document into v. A missing or empty file leaves v
// untouched and returns nil; malformed JSON is an IO error carrying
// the offending path.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return trkerr.WrapIO("reading "+path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return trkerr.WrapIO("parsing JSON in "+path, err)
	}
	return nil
}

// LoadRaw reads a JSON document's raw bytes. Missing or empty files
// yield an empty object so callers can migrate them uniformly.
func LoadRaw(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte("{}"), nil
		}
		return nil, trkerr.WrapIO("reading "+path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []byte("{}"), nil
	}
	return data, nil
}

// Save writes v as indented JSON, creating parent directories as
// needed. The target file is overwritten in full.
func Save(path string, v any) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return trkerr.WrapIO("encoding "+path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return trkerr.WrapIO("writing "+path, err)
	}
	return nil
}

// EnsureDir creates a directory (and parents) if absent.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return trkerr.WrapIO("creating directory "+path, err)
	}
	return nil
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListStems returns the sorted filename stems of all files in dir with
// the given extension (e.g. ".json"). A missing directory is empty.
func ListStems(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, trkerr.WrapIO("reading directory "+dir, err)
	}

	var stems []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		stems = append(stems, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(stems)
	return stems, nil
}

// CopyFile copies src to dst byte for byte, creating dst's parent
// directories as needed. Used for verbatim template seeding.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return trkerr.NotFound("template " + src + " not found")
		}
		return trkerr.WrapIO("opening "+src, err)
	}
	defer in.Close()

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return trkerr.WrapIO("creating "+dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return trkerr.WrapIO("copying to "+dst, err)
	}
	return nil
}
