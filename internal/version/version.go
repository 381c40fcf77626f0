package version

// Version is overridden at build time with
// -ldflags "-X github.com/wallarm/gotestapi/internal/version.Version=vX.Y.Z".
var Version = "unknown"
