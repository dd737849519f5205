package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewS3Service_MissingCredentials(t *testing.T) {
	for _, key := range []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION", "AWS_S3_BUCKET"} {
		os.Unsetenv(key)
	}

	service, err := NewS3Service()

	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("resume.pdf"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("resume.unknownext"))
}
