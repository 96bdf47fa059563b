// Package web embeds the single page served for every non-API path.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
