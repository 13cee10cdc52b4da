package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// RefreshFontCache asks the OS to pick up fonts newly written to fontDir.
// Windows and unknown platforms need no refresh.
func RefreshFontCache(ctx context.Context, o OS, fontDir string) error {
	switch o {
	case Linux:
		return runCommand(ctx, "fc-cache", "-f", fontDir)
	case Darwin:
		// macOS watches the fonts directory; bumping its mtime triggers a rescan
		now := time.Now()
		if err := os.Chtimes(fontDir, now, now); err != nil {
			return fmt.Errorf("updating directory timestamp: %w", err)
		}
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running %s: %s: %w", name, output, err)
	}
	return nil
}
