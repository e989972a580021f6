package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the zinc CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Banner renders `zinc <version> (<commit>, <date>)`; with colored set the
// major, minor and patch parts get their own colours.
func Banner(colored bool) string {
	parts := []*color.Color{
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}
	core, suffix, _ := strings.Cut(Version, "-")
	nums := strings.SplitN(core, ".", 3)
	for i := range nums {
		c := parts[i]
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		nums[i] = c.Sprint(nums[i])
	}
	v := strings.Join(nums, ".")
	if suffix != "" {
		v += "-" + suffix
	}

	var meta []string
	if GitCommit != "" {
		meta = append(meta, GitCommit)
	}
	if BuildDate != "" {
		meta = append(meta, BuildDate)
	}
	if len(meta) == 0 {
		return fmt.Sprintf("zinc %s", v)
	}
	return fmt.Sprintf("zinc %s (%s)", v, strings.Join(meta, ", "))
}
