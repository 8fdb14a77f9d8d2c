// internals/helpers/oss/oss_file_service.go
package helper

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller:
controller tidak perlu tahu detail OSS/WebP, cukup minta URL publik.
*/

type BlobService interface {
	// UploadProfileImage: re-encode → WebP, taruh di dir "profile".
	UploadProfileImage(ctx context.Context, fh *multipart.FileHeader) (publicURL string, err error)

	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS (OSSService)
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// Buat instance dari ENV. prefix opsional (contoh: "uploads/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadProfileImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	url, err := b.svc.UploadAsWebP(ctx, fh, "profile") // re-encode → WebP
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return url, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL kosong")
	}
	if err := b.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal hapus object")
	}
	return nil
}
