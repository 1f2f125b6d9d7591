package cli

import (
	"log"

	"github.com/schollz/progressbar/v3"
)

// batchProgress reports directory-batch progress with a progress bar.
type batchProgress struct {
	quiet   bool
	bar     *progressbar.ProgressBar
	total   int
	done    int
	noSplit int
}

func newBatchProgress(quiet bool, total int) *batchProgress {
	p := &batchProgress{quiet: quiet, total: total}
	if quiet {
		return p
	}

	log.Printf("Splitting %d files\n", total)
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Splitting files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
	)
	return p
}

func (p *batchProgress) fileDone(split bool) {
	p.done++
	if !split {
		p.noSplit++
	}
	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p *batchProgress) finish() {
	if p.quiet {
		return
	}
	if p.bar != nil {
		p.bar.Finish()
	}
	log.Printf("\nDone: %d files, %d without a valid split\n", p.done, p.noSplit)
}
