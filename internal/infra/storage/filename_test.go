package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilenameAt(t *testing.T) {
	t.Parallel()

	em := time.UnixMilli(1717171717000)

	assert.Equal(t, "produto-1717171717000.webp", FilenameAt("produto", "webp", em))
	assert.Equal(t, "logo-1717171717000.webp", FilenameAt("logo", ".webp", em), "extensão com ponto é normalizada")
}
