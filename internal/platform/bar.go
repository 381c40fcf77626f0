package platform

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

func NewProgressBar(total int, w io.Writer) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("API Testing"),
		progressbar.OptionSetItsString("endpoint"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish())
	return bar
}
