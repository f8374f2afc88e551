// Package storage persists uploaded media to type-partitioned directories on
// local disk. Filenames are UUID-based so concurrent uploads cannot collide.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"complainthub.backend/internal/domain/entities"
)

// StoredFile is the result of persisting one upload.
type StoredFile struct {
	Path string
	Type entities.FileType
}

// LocalStore writes uploads under a root directory, partitioned by
// attachment type for complaints and by image kind for user images.
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// ClassifyContentType maps a declared MIME type to the coarse file type tag.
// Documents are recognized for a small allow-list plus generic application/*.
func ClassifyContentType(contentType string) entities.FileType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return entities.FileTypeImage
	case strings.HasPrefix(contentType, "video/"):
		return entities.FileTypeVideo
	case strings.HasPrefix(contentType, "audio/"):
		return entities.FileTypeAudio
	case contentType == "application/pdf",
		contentType == "application/msword",
		contentType == "application/vnd.ms-excel",
		strings.HasPrefix(contentType, "application/"):
		return entities.FileTypeDocument
	default:
		return entities.FileTypeOther
	}
}

// complaintDirs maps a file type to its directory under root/complaints.
var complaintDirs = map[entities.FileType]string{
	entities.FileTypeImage:    "images",
	entities.FileTypeVideo:    "videos",
	entities.FileTypeAudio:    "audios",
	entities.FileTypeDocument: "documents",
	entities.FileTypeOther:    "others",
}

// SaveComplaintFile classifies and persists one complaint attachment,
// returning the stored path relative to the process working directory.
func (s *LocalStore) SaveComplaintFile(fh *multipart.FileHeader) (*StoredFile, error) {
	fileType := ClassifyContentType(fh.Header.Get("Content-Type"))
	dir := filepath.Join(s.root, "complaints", complaintDirs[fileType])

	path, err := s.write(fh, dir)
	if err != nil {
		return nil, err
	}
	return &StoredFile{Path: path, Type: fileType}, nil
}

// SaveUserImage persists a profile or cover image under root/users/<kind>.
func (s *LocalStore) SaveUserImage(kind string, fh *multipart.FileHeader) (string, error) {
	return s.write(fh, filepath.Join(s.root, "users", kind))
}

// Remove unlinks a previously stored file. A missing file is not an error.
func (s *LocalStore) Remove(path string) error {
	path = strings.TrimPrefix(path, "/")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) write(fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}
