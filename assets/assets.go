package assets

import "embed"

//go:embed stars/*.json
var Stars embed.FS

//go:embed config/*.json
var Config embed.FS
