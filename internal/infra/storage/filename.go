package storage

import (
	"fmt"
	"strings"
	"time"
)

// Filename gera o nome do objeto no formato {tipo}-{timestamp}.{ext},
// ex.: produto-1717171717000.webp.
func Filename(tipo, ext string) string {
	return FilenameAt(tipo, ext, time.Now())
}

func FilenameAt(tipo, ext string, at time.Time) string {
	return fmt.Sprintf("%s-%d.%s", tipo, at.UnixMilli(), strings.TrimPrefix(ext, "."))
}
