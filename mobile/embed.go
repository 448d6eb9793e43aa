//go:build mobile

package mobile

import "embed"

// dataFS needs data/ copied here first (cp -r data mobile/), since
// //go:embed cannot reach the module root.
//
//go:embed data
var dataFS embed.FS
