package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNoFile is returned by Store when the request carried no file.
var ErrNoFile = errors.New("no file uploaded")

// Manager owns the image upload lifecycle: unique naming, persistence into a
// fixed directory, and removal of superseded files. It is transport-agnostic
// so handlers stay testable without multipart plumbing.
type Manager struct {
	Dir          string // filesystem directory files are written into
	PublicPath   string // URL prefix stored references start with
	DefaultImage string // reference handed out when no file is uploaded
}

func NewManager(dir, publicPath, defaultImage string) *Manager {
	return &Manager{Dir: dir, PublicPath: publicPath, DefaultImage: defaultImage}
}

// Store persists the uploaded file under a collision-resistant name and
// returns its public reference. A nil header yields ErrNoFile.
func (m *Manager) Store(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNoFile
	}

	if err := os.MkdirAll(m.Dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	base := strings.TrimSuffix(filepath.Base(fh.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(m.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return m.PublicPath + "/" + filename, nil
}

// StoreOrDefault behaves like Store but falls back to the default image
// reference when no file was uploaded, so created rows never carry a null
// image.
func (m *Manager) StoreOrDefault(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return m.DefaultImage, nil
	}
	return m.Store(fh)
}

// Replace stores the new file, then removes the file behind oldRef. A missing
// old file is not an error, and a failed delete is logged rather than
// surfaced: the caller's row update must still succeed.
func (m *Manager) Replace(oldRef string, fh *multipart.FileHeader) (string, error) {
	ref, err := m.Store(fh)
	if err != nil {
		return "", err
	}

	if oldRef != "" && oldRef != m.DefaultImage {
		oldPath := filepath.Join(m.Dir, filepath.Base(oldRef))
		if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", oldPath).Warn("failed to delete replaced image")
		}
	}

	return ref, nil
}
