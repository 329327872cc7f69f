package storage

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	before := time.Now().UnixMilli()
	key := ObjectKey(42, "photo.png")
	after := time.Now().UnixMilli()

	require.True(t, strings.HasPrefix(key, "projects/42/"), key)
	require.True(t, strings.HasSuffix(key, "-photo.png"), key)

	middle := strings.TrimSuffix(strings.TrimPrefix(key, "projects/42/"), "-photo.png")
	millis, err := strconv.ParseInt(middle, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
	assert.LessOrEqual(t, millis, after)
}

func TestObjectKeysDifferAcrossTime(t *testing.T) {
	first := ObjectKey(1, "a.png")
	time.Sleep(2 * time.Millisecond)
	second := ObjectKey(1, "a.png")
	assert.NotEqual(t, first, second)
}

func TestPublicURL(t *testing.T) {
	s := &S3Store{bucket: "my-bucket", region: "eu-west-1"}

	assert.Equal(t,
		"https://my-bucket.s3.eu-west-1.amazonaws.com/projects/1/123-a.png",
		s.publicURL("projects/1/123-a.png"))

	// spaces in the original filename must be escaped, slashes kept
	assert.Equal(t,
		"https://my-bucket.s3.eu-west-1.amazonaws.com/projects/1/123-a%20b.png",
		s.publicURL("projects/1/123-a b.png"))
}
