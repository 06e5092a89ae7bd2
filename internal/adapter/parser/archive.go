package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

var errNoCorpusInArchive = errors.New("archive has no folder with the metadata file")

func isArchive(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zip")
}

// loadArchive extracts a zipped export to a temporary folder and loads the
// first folder inside it that holds the metadata file.
func (l *CorpusLoader) loadArchive(archivePath string) (*domain.Conversation, error) {
	if _, err := os.Stat(archivePath); err != nil {
		return nil, &domain.PathError{Path: archivePath, Err: err}
	}

	tempDir, err := os.MkdirTemp("", "message-analyser-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := extractZip(archivePath, tempDir); err != nil {
		return nil, fmt.Errorf("extracting %s: %w", archivePath, err)
	}

	dir, err := findCorpusDir(tempDir, l.MetadataFile)
	if err != nil {
		return nil, &domain.PathError{Path: archivePath, Err: err}
	}
	l.logger.Debugw("Extracted export archive", "archive", archivePath, "corpus", dir)

	conv, err := l.loadDir(dir)
	if err != nil {
		return nil, err
	}
	conv.Path = archivePath
	return conv, nil
}

func findCorpusDir(root, metadataFile string) (string, error) {
	found := ""
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == metadataFile {
			found = filepath.Dir(path)
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", errNoCorpusInArchive
	}
	return found, nil
}

func extractZip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		// Sanitize path to prevent zip slip (G305)
		name := filepath.Clean(f.Name)
		if strings.Contains(name, "..") || filepath.IsAbs(name) {
			continue
		}
		destPath := filepath.Join(destDir, name)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o750); err != nil {
				return err
			}
			continue
		}

		// Media files are never read.
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o750); err != nil {
			return err
		}

		if err := extractZipFile(f, destPath); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(f *zip.File, destPath string) error {
	outFile, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	// Limit extraction size to 1 GB to prevent decompression bombs (G110)
	const maxSize = 1 << 30
	_, err = io.Copy(outFile, io.LimitReader(rc, maxSize))
	return err
}
