package main

import (
	"io"

	"github.com/cheggaaa/pb"
	"github.com/logandonley/nerd-font-installer/pkg/fm"
)

// downloadProgress shows a running byte count and speed while an archive
// downloads. Release assets carry no reliable size, so there is no bar.
// When disabled the body passes through untouched.
func downloadProgress(w io.Writer, enabled bool) fm.ProgressFunc {
	return func(entry fm.FontEntry, body io.Reader) (io.Reader, func()) {
		if !enabled {
			return body, func() {}
		}

		bar := pb.New(0).SetUnits(pb.U_BYTES).Prefix("  " + entry.AssetName + " ")
		bar.Output = w
		bar.ShowBar = false
		bar.ShowPercent = false
		bar.ShowTimeLeft = false
		bar.ShowSpeed = true
		bar.Start()

		return bar.NewProxyReader(body), bar.Finish
	}
}
