package main

import "embed"

// dataFS holds the YAML data files. //go:embed only reaches files below the
// declaring package, so this lives next to data/.
//
//go:embed data
var dataFS embed.FS
