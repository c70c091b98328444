package version

// Overridden at link time:
//
//	go build -ldflags "-X github.com/Chlorophytus/rayfly/internal/version.Version=0.4.0"
var (
	Name      = "rayfly"
	Version   = "0.3.0-dev"
	GitCommit = "unknown"
)

// Title is the window title and the --version output.
func Title() string {
	return Name + " " + Version
}
