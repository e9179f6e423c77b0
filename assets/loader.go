package assets

import (
	"github.com/charmbracelet/log"
)

// Loader runs asset fetches in the background and hands the results back on the caller's
// goroutine. Callbacks only ever run inside Poll.
type Loader struct {
	done    chan func()
	pending int
}

func NewLoader() *Loader {
	return &Loader{done: make(chan func(), 16)}
}

// Load starts fetch on its own goroutine. onLoad or onError runs during a later Poll.
// There is no retry; a failed asset stays missing.
func Load[T any](l *Loader, name string, fetch func() (T, error), onLoad func(T), onError func(error)) {
	l.pending++
	go func() {
		v, err := fetch()
		l.done <- func() {
			if err != nil {
				log.Error("asset load failed", "asset", name, "err", err)
				if onError != nil {
					onError(err)
				}
				return
			}
			log.Info("asset loaded", "asset", name)
			if onLoad != nil {
				onLoad(v)
			}
		}
	}()
}

// Poll runs the callbacks of every load that has finished and returns how many ran.
func (l *Loader) Poll() int {
	n := 0
	for {
		select {
		case fn := <-l.done:
			l.pending--
			fn()
			n++
		default:
			return n
		}
	}
}

// Pending is the number of loads whose callbacks have not run yet.
func (l *Loader) Pending() int {
	return l.pending
}
