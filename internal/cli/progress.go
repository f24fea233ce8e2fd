package cli

import (
	"sync"

	"github.com/schollz/progressbar/v3"
)

// progressReporter renders a progress bar over the collector's per-file
// callback. The bar is created lazily once the total is known and the mutex
// keeps concurrent worker callbacks safe.
type progressReporter struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func newProgressReporter() *progressReporter {
	return &progressReporter{}
}

func (p *progressReporter) onFile(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Harvesting files"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files/s"),
			progressbar.OptionClearOnFinish(),
		)
	}
	p.bar.Set(done)
}
