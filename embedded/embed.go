// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// Icon - иконка приложения в трее.
//
//go:embed icon.png
var Icon []byte
