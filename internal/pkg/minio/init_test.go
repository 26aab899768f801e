package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/images/a-1.png", PublicURL("cdn.example.com", true, "images", "a-1.png"))
	assert.Equal(t, "http://localhost:9000/images/a-1.png", PublicURL("localhost:9000", false, "images", "a-1.png"))
}
