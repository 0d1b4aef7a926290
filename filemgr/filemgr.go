package filemgr

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ValidateHeader checks extension, declared size, and sniffed MIME type
// against the upload constraints without consuming the caller's reader.
func ValidateHeader(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, ext)
	}
	if header.Size > MaxFileSize {
		return ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", header.Filename, err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	if mimeType == "application/octet-stream" {
		if formMime := header.Header.Get("Content-Type"); formMime != "" {
			mimeType = formMime
		}
	}
	if !isMIMEAllowed(mimeType) {
		return fmt.Errorf("%w: %s", ErrInvalidMIME, mimeType)
	}
	return nil
}

// CheckForm enforces the per-request file count limit across all form keys.
func CheckForm(form *multipart.Form) error {
	if form == nil {
		return nil
	}
	total := 0
	for _, headers := range form.File {
		total += len(headers)
	}
	if total > MaxFilesPerRequest {
		return ErrTooManyFiles
	}
	return nil
}

// saveFile writes the validated upload to destDir under a fresh UUID name
// and returns the stored filename.
func saveFile(header *multipart.FileHeader, destDir string) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", header.Filename, err)
	}
	defer file.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := uuid.New().String() + ext
	fullPath := filepath.Join(destDir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", fullPath, err)
	}
	defer out.Close()

	written, err := io.Copy(out, io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}
	if written > MaxFileSize {
		os.Remove(fullPath)
		return "", ErrFileTooLarge
	}

	return filename, nil
}

// ResolvePath returns the on-disk directory for an entity's images.
func ResolvePath(entity EntityType) string {
	return filepath.Join("static", "uploads", strings.ToLower(string(entity)), "photo")
}

// PublicURL converts a stored filename into the path clients dereference.
func PublicURL(entity EntityType, filename string) string {
	return "/static/uploads/" + strings.ToLower(string(entity)) + "/photo/" + filename
}

// SaveFormFile validates and stores the first file under formKey, returning
// its public URL. An absent key is not an error unless required is set.
func SaveFormFile(form *multipart.Form, formKey string, entity EntityType, required bool) (string, error) {
	if form == nil {
		if required {
			return "", fmt.Errorf("missing required file: %s", formKey)
		}
		return "", nil
	}
	if err := CheckForm(form); err != nil {
		return "", err
	}
	files := form.File[formKey]
	if len(files) == 0 {
		if required {
			return "", fmt.Errorf("missing required file: %s", formKey)
		}
		return "", nil
	}

	header := files[0]
	if err := ValidateHeader(header); err != nil {
		return "", err
	}
	filename, err := saveFile(header, ResolvePath(entity))
	if err != nil {
		return "", err
	}
	return PublicURL(entity, filename), nil
}

func isExtensionAllowed(ext string) bool {
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string) bool {
	for _, a := range AllowedMIMEs {
		if mimeType == a {
			return true
		}
	}
	return false
}
