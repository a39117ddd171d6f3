// Package runtime bundles the hand-written RISC-V runtime-library
// fragments as embedded resources, so the compiled chocogen binary needs
// no separate install step to find them (§6's "named .s fragments located
// under a known resource path").
package runtime

import "embed"

//go:embed *.s
var FS embed.FS
