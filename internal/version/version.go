package version

// Name identifies the service in version responses and healthcheck output.
const Name = "band-manager"

// These variables are overridden at build time using -ldflags.
// Keep sensible defaults for local development.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String renders the build identity as name/version+commit.
func String() string {
	s := Name + "/" + Version
	if Commit != "none" && Commit != "" {
		s += "+" + Commit
	}
	return s
}
