package blobs

import "errors"

const (
	// MaxUploadSize caps attachment uploads at 5 MiB
	MaxUploadSize = 5 << 20
)

var (
	// ErrBlobTooLarge indicates the upload exceeds MaxUploadSize
	ErrBlobTooLarge = errors.New("attachment exceeds the maximum upload size")

	// ErrUnsupportedType indicates the content is not an allowed image kind
	ErrUnsupportedType = errors.New("attachment must be a JPEG, PNG, or GIF image")

	// ErrEmptyBlob indicates the upload carried no bytes
	ErrEmptyBlob = errors.New("attachment is empty")
)

// allowedTypes maps accepted MIME types to the extension stored on disk
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}
