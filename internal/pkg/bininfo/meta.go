// Values in this file are injected at build time, e.g.
//
//	go build -ldflags "-X github.com/ganeshsankaran/curve-surfer/internal/pkg/bininfo.Version=v1.2.0"
//
// Keep the variable names stable: release tooling refers to them by name.
package bininfo

var (
	// Version is the SemVer version of the binary.
	Version = "v0.0.0"

	// BuildTime is the time at which the binary was built, in RFC 3339.
	BuildTime = "1970-01-01T00:00:00Z"
)
