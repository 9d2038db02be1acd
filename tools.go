//go:build tools

package contig

import (
	// Tool dependencies for go:generate.
	_ "github.com/dmarkham/enumer"
)
