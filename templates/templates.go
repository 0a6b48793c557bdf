// Package templates embeds the per shell completion templates so the
// generator works without any checkout relative paths. An on disk directory
// can still be passed to the driver to override them.
package templates

import "embed"

//go:embed completion.*.tmpl
var FS embed.FS
