package filemgr

import "errors"

type EntityType string

const (
	EntityBlog          EntityType = "blog"
	EntityCertification EntityType = "certification"
	EntityProject       EntityType = "project"
	EntityUser          EntityType = "user"
)

const (
	// MaxFileSize caps a single uploaded image.
	MaxFileSize int64 = 2 << 20
	// MaxFilesPerRequest caps how many files one multipart form may carry.
	MaxFilesPerRequest = 5
)

var (
	AllowedExtensions = []string{".png", ".jpg", ".jpeg"}
	AllowedMIMEs      = []string{"image/png", "image/jpeg"}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
	ErrTooManyFiles     = errors.New("too many files in request")
)
