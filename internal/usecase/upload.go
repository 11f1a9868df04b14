package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/pkg/ids"
)

// FilesRoute is the path prefix attachments are retrieved through.
const FilesRoute = "/api/files/"

// Presigner hands out time limited URLs for direct object storage access.
type Presigner interface {
	PresignUpload(ctx context.Context, key, contentType string, size int64) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// UploadUseCase prepares attachment uploads and resolves attachment downloads.
type UploadUseCase struct {
	presigner Presigner
	now       func() time.Time
}

// NewUploadUseCase constructs UploadUseCase.
func NewUploadUseCase(presigner Presigner) *UploadUseCase {
	return &UploadUseCase{presigner: presigner, now: time.Now}
}

// Prepare reserves an object key and returns a presigned upload URL together with
// the attachment describing the future object.
func (u *UploadUseCase) Prepare(ctx context.Context, name string, size int64, contentType string) (*model.UploadSlot, error) {
	name = strings.TrimSpace(name)
	if name == "" || size < 0 {
		return nil, domainErrors.ErrInvalidAttachment
	}
	fileID := ids.New(ids.PrefixFile)
	key := path.Join("uploads", fileID, sanitizeName(name))

	uploadURL, err := u.presigner.PresignUpload(ctx, key, contentType, size)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &model.UploadSlot{
		Key:       key,
		UploadURL: uploadURL,
		Attachment: model.Attachment{
			ID:        fileID,
			Name:      name,
			URL:       FilesRoute + key,
			Size:      size,
			Type:      contentType,
			CreatedAt: u.now(),
		},
	}, nil
}

// ResolveDownload returns a presigned URL for the object behind key.
func (u *UploadUseCase) ResolveDownload(ctx context.Context, key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || path.Clean(key) != key || strings.HasPrefix(key, "..") {
		return "", domainErrors.ErrNotFound
	}
	url, err := u.presigner.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

// sanitizeName keeps object keys free of path separators and control characters.
func sanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return -1
		case r == ' ':
			return '_'
		default:
			return r
		}
	}, name)
	if cleaned == "" || cleaned == "." || cleaned == ".." || cleaned == "/" {
		return "file"
	}
	return cleaned
}
