// Package build holds build-time information for wrotag.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags:
//
//	-ldflags "-X go.trai.ch/wrotag/internal/build.Version=v1.2.3"
var Version = "dev"
