// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

var (
	// batas ukuran uploader di controller (tetap dipakai sebagai guard ringan)
	maxUploadSize = int64(5 * 1024 * 1024)
)

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "uploads/"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadAsWebP membaca file multipart (jpeg/png/webp), re-encode ke WebP,
// lalu upload dengan key acak di bawah keyPrefix. Mengembalikan public URL.
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("file kosong")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi batas %d byte", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if int64(len(all)) > maxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi batas %d byte", maxUploadSize)
	}

	webpBytes, err := ConvertToWebP(all, fh.Filename)
	if err != nil {
		return "", err
	}

	key := s.buildObjectKey(keyPrefix, ".webp")
	if err := s.UploadStream(ctx, key, bytes.NewReader(webpBytes), "image/webp"); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, r, opts...); err != nil {
		return fmt.Errorf("oss put %s: %w", key, err)
	}
	return nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key)
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.keyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(ctx, key)
}

func (s *OSSService) PublicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, key)
}

func (s *OSSService) keyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil || u.Path == "" {
		return "", fmt.Errorf("public URL tidak valid: %q", publicURL)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

// buildObjectKey: <prefix>/<dir>/<yyyy/mm>/<uuid><ext>
func (s *OSSService) buildObjectKey(dir, ext string) string {
	now := time.Now().UTC()
	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if d := strings.Trim(dir, "/"); d != "" {
		parts = append(parts, d)
	}
	parts = append(parts, fmt.Sprintf("%04d/%02d", now.Year(), now.Month()), uuid.NewString()+ext)
	return path.Join(parts...)
}
