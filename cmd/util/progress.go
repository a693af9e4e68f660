package util

// Progress counts finished jobs (and the errors among them) from any number
// of goroutines. Errors are always reported; the running count is only shown
// with -verbose.
type Progress struct {
	errs chan error
	done chan int
}

// NewProgress starts counting jobs. 'what' names the jobs in the progress
// line, e.g., "chains".
func NewProgress(total int, what string) Progress {
	p := Progress{make(chan error), make(chan int)}
	go func() {
		completed := 0
		errorCount := 0
		for err := range p.errs {
			completed += 1
			if err != nil {
				errorCount += 1
				if FlagVerbose {
					Warnf("\r%s                                    \n", err)
				} else {
					Warnf("%s", err)
				}
			}

			ratio := 100.0 * (float64(completed) / float64(total))
			Verbosef("\r%d of %d %s done (%0.2f%%, %d errors)",
				completed, total, what, ratio, errorCount)
		}
		Verbosef("\n")
		p.done <- errorCount
	}()
	return p
}

func (p Progress) JobDone(err error) {
	p.errs <- err
}

// Close waits for every reported job to be counted and returns the number of
// errors.
func (p Progress) Close() int {
	close(p.errs)
	return <-p.done
}
