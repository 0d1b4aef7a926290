package filemgr

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// SaveImageWithThumb stores an avatar upload and a 200px-wide JPEG thumbnail
// next to it, returning the public URLs of both.
func SaveImageWithThumb(header *multipart.FileHeader, entity EntityType) (string, string, error) {
	if err := ValidateHeader(header); err != nil {
		return "", "", err
	}

	filename, err := saveFile(header, ResolvePath(entity))
	if err != nil {
		return "", "", err
	}

	fullPath := filepath.Join(ResolvePath(entity), filename)
	src, err := os.Open(fullPath)
	if err != nil {
		return PublicURL(entity, filename), "", fmt.Errorf("reopen %s: %w", fullPath, err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return PublicURL(entity, filename), "", fmt.Errorf("decode %s: %w", filename, err)
	}

	resized := imaging.Resize(img, 200, 0, imaging.Lanczos)
	thumbDir := filepath.Join("static", "uploads", strings.ToLower(string(entity)), "thumb")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return PublicURL(entity, filename), "", fmt.Errorf("mkdir %s: %w", thumbDir, err)
	}

	thumbName := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
	thumbPath := filepath.Join(thumbDir, thumbName)
	out, err := os.Create(thumbPath)
	if err != nil {
		return PublicURL(entity, filename), "", fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return PublicURL(entity, filename), "", fmt.Errorf("encode thumbnail: %w", err)
	}

	thumbURL := "/static/uploads/" + strings.ToLower(string(entity)) + "/thumb/" + thumbName
	return PublicURL(entity, filename), thumbURL, nil
}
