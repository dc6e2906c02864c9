package version

// Version is set at build time with
// -ldflags "-X github.com/maxvaer/plaincheck/pkg/version.Version=1.2.3".
var Version = "dev"
