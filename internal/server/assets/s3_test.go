package assets

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/petarea/petarea/internal/server/config"
)

func TestS3Store_Save(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origPut := putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		putObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}

	var gotBucket, gotKey, gotBody string
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotBucket = aws.ToString(in.Bucket)
		gotKey = aws.ToString(in.Key)
		b, err := io.ReadAll(in.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		gotBody = string(b)
		return &s3.PutObjectOutput{}, nil
	}

	cfg := &sc.Config{S3Bucket: "petfotos", S3Region: "us-east-1"}
	store, err := NewS3Store(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewS3Store error: %v", err)
	}

	ref, err := store.Save(context.Background(), "perfil.jpg", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if gotBucket != "petfotos" {
		t.Fatalf("wrong bucket: %q", gotBucket)
	}
	if !strings.HasPrefix(gotKey, "photos/") || !strings.HasSuffix(gotKey, ".jpg") {
		t.Fatalf("unexpected key: %q", gotKey)
	}
	if ref != gotKey {
		t.Fatalf("reference %q does not match stored key %q", ref, gotKey)
	}
	if gotBody != "img" {
		t.Fatalf("body mismatch: %q", gotBody)
	}
}
