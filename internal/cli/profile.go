package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/profile"
)

//nolint:gochecknoglobals // lookup table for the --profile flag
var profileModes = map[string]func(*profile.Profile){
	"cpu":       profile.CPUProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"mutex":     profile.MutexProfile,
	"goroutine": profile.GoroutineProfile,
	"trace":     profile.TraceProfile,
}

// stopper ends a profiling session.
type stopper interface{ Stop() }

type noProfile struct{}

func (noProfile) Stop() {}

// startProfile starts the named profile, writing into dir. An empty mode
// disables profiling.
func startProfile(mode, dir string) (stopper, error) {
	if mode == "" {
		return noProfile{}, nil
	}

	fn, ok := profileModes[mode]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q; valid profiles: %s",
			mode, strings.Join(slices.Sorted(maps.Keys(profileModes)), ", "))
	}

	opts := []func(*profile.Profile){fn, profile.Quiet, profile.NoShutdownHook}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}
	return profile.Start(opts...), nil
}
