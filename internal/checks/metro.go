package checks

import (
	"context"
	"fmt"
)

const (
	statusPath    = "/status"
	bundlePath    = "/index.bundle?platform=android&dev=true&minify=false"
	sourceMapPath = "/index.map?platform=android&dev=true&minify=false"
)

func (s *Suite) checkMetroServer(ctx context.Context, rec *recorder) bool {
	timeouts := s.config.Timeouts

	res, err := s.prober.Get(ctx, statusPath, timeouts.MetroStatus)
	if err != nil {
		return rec.Fail("Status Endpoint", fmt.Sprintf("Connection failed: %v", err))
	}
	if !res.OK() {
		return rec.Fail("Status Endpoint", fmt.Sprintf("Unexpected status code: %d", res.StatusCode))
	}
	rec.Pass("Status Endpoint", fmt.Sprintf("Metro server responding on port %s", s.config.MetroPort()))

	// A slow or failed bundle build fails this category only
	res, err = s.prober.Get(ctx, bundlePath, timeouts.Bundle)
	if err != nil {
		return rec.Fail("Bundle Generation", fmt.Sprintf("Bundle request failed: %v", err))
	}
	if !res.OK() || res.Size() <= s.config.Expect.MinBundleBytes {
		return rec.Fail("Bundle Generation",
			fmt.Sprintf("Bundle generation failed or too small (status %d, %d bytes)", res.StatusCode, res.Size()))
	}
	rec.Pass("Bundle Generation", fmt.Sprintf("Bundle generated successfully (%d bytes)", res.Size()))

	res, err = s.prober.Get(ctx, sourceMapPath, timeouts.SourceMap)
	switch {
	case err != nil:
		rec.Warn("Source Map Generation", fmt.Sprintf("Source map request failed: %v (non-critical)", err))
	case !res.OK():
		rec.Warn("Source Map Generation", "Source map generation failed (non-critical)")
	default:
		rec.Pass("Source Map Generation", "Source maps generated successfully")
	}

	return true
}
