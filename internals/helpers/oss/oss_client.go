// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

/* =======================================================================
   OSS Service — storage de blobs (PDFs de certificado)
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // opcional: "certificados/"
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

	// Verificação leve da localização do bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: pulando checagem de localização (AccessDenied, bucket=%s).", bucketName)
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

func (s *OSSService) key(filename string) string {
	if s.Prefix == "" {
		return filename
	}
	return s.Prefix + "/" + filename
}

// Put grava os bytes e devolve a key do objeto (id opaco do blob).
func (s *OSSService) Put(ctx context.Context, data []byte, filename string) (string, error) {
	key := s.key(filename)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("application/pdf"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("private, max-age=0"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return key, nil
}

// Get busca os bytes pelo id do blob. Blob inexistente devolve (nil, nil).
func (s *OSSService) Get(ctx context.Context, blobID string) ([]byte, error) {
	rc, err := s.Bucket.GetObject(blobID, oss.WithContext(ctx))
	if err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 404 {
			return nil, nil
		}
		return nil, fmt.Errorf("oss get %s: %w", blobID, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Delete remove o objeto. Chamadas são best-effort no service de certificado.
func (s *OSSService) Delete(ctx context.Context, blobID string) error {
	if err := s.Bucket.DeleteObject(blobID, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("oss delete %s: %w", blobID, err)
	}
	return nil
}
