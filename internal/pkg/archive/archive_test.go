package archive

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plzerfassung/plzerfassung/internal/pkg/env"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestLoadConfigDisabledByDefault(t *testing.T) {
	env.Env = map[string]string{}
	t.Cleanup(func() { env.Env = nil })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.IsEnabled())
}

func TestLoadConfigRequiresCredentialsWhenEnabled(t *testing.T) {
	env.Env = map[string]string{"S3_ARCHIVE_ENABLED": "true", "S3_BUCKET_NAME": "reports"}
	t.Cleanup(func() { env.Env = nil })

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY")
	assert.NotContains(t, err.Error(), "S3_BUCKET_NAME")

	env.Env["S3_ACCESS_KEY_ID"] = "id"
	env.Env["S3_SECRET_ACCESS_KEY"] = "secret"
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsEnabled())
	assert.Equal(t, "reports", cfg.BucketName)
}

func TestObjectKey(t *testing.T) {
	cfg := &Config{}
	key := cfg.ObjectKey("abc", "PLZ Erfassung - 01 05 2024.pdf", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "reports/2024/05/abc-PLZ Erfassung - 01 05 2024.pdf", key)
}

func TestStoreUploadsPDF(t *testing.T) {
	putter := &fakePutter{}
	client := newClient(putter, &Config{BucketName: "reports", Enabled: true})
	client.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	res, err := client.Store(context.Background(), "PLZ Erfassung - Mai 2024.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)

	assert.Equal(t, "reports", res.BucketName)
	assert.True(t, strings.HasPrefix(res.ObjectKey, "reports/2024/05/"))
	assert.True(t, strings.HasSuffix(res.ObjectKey, "-PLZ Erfassung - Mai 2024.pdf"))
	assert.Equal(t, int64(8), res.Size)
	assert.Equal(t, "application/pdf", *putter.input.ContentType)
	assert.Equal(t, []byte("%PDF-1.3"), putter.body)
}

func TestStorePropagatesErrors(t *testing.T) {
	client := newClient(&fakePutter{err: errors.New("access denied")}, &Config{BucketName: "reports", Enabled: true})

	_, err := client.Store(context.Background(), "x.pdf", []byte("x"))
	assert.Error(t, err)
}
