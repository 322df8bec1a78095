package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cutcorp-booking/internal/config"
)

type fakePut struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePut) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Uploader_Upload(t *testing.T) {
	fake := &fakePut{}
	u := &S3Uploader{client: fake, bucket: "photos", publicBase: "https://cdn.example.com"}

	url, err := u.Upload(context.Background(), "barbers/abc.webp", "image/webp", []byte("RIFF"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/barbers/abc.webp", url)
	assert.Equal(t, "photos", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "image/webp", aws.ToString(fake.in.ContentType))
	assert.Equal(t, []byte("RIFF"), fake.body)
}

func TestS3Uploader_Error(t *testing.T) {
	u := &S3Uploader{client: &fakePut{err: errors.New("denied")}, bucket: "photos"}

	_, err := u.Upload(context.Background(), "k", "image/webp", nil)
	assert.Error(t, err)
}

func TestNewS3Uploader_DefaultPublicBase(t *testing.T) {
	u := NewS3Uploader(&config.Config{S3Bucket: "photos", S3Region: "sa-east-1"})
	assert.Equal(t, "https://photos.s3.sa-east-1.amazonaws.com", u.publicBase)
}
