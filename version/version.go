package version

// These values are injected at link time using
// -ldflags "-X github.com/xZise/Riesenrad/version.GitHash=... -X github.com/xZise/Riesenrad/version.BuildTime=..."

var (
	BuildTime string
	GitHash   string
)
