package console

import "sync"

// Loop is the display goroutine. Every display mutation runs on it, in the
// order it was posted. Posting never blocks.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stopped bool
	done    chan struct{}

	afterBatch func()
}

// NewLoop starts a display goroutine. afterBatch, when non-nil, runs on the
// loop after each drained batch of posted functions.
func NewLoop(afterBatch func()) *Loop {
	l := &Loop{done: make(chan struct{}), afterBatch: afterBatch}
	l.cond = sync.NewCond(&l.mu)
	go l.run()
	return l
}

// Post queues fn for the display goroutine. It reports false once the loop
// has been stopped.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return false
	}
	l.queue = append(l.queue, fn)
	l.cond.Signal()
	return true
}

// Do runs fn on the display goroutine and waits for it. It must not be
// called from the display goroutine itself.
func (l *Loop) Do(fn func()) {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return
	}
	select {
	case <-done:
	case <-l.done:
	}
}

// Flush waits until everything posted so far has run.
func (l *Loop) Flush() { l.Do(func() {}) }

// Stop drains the queue and ends the goroutine.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.stopped = true
	l.cond.Signal()
	l.mu.Unlock()
	<-l.done
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.stopped {
			l.cond.Wait()
		}
		batch := l.queue
		l.queue = nil
		stopped := l.stopped
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
		if len(batch) > 0 && l.afterBatch != nil {
			l.afterBatch()
		}
		if stopped {
			l.mu.Lock()
			rest := len(l.queue)
			l.mu.Unlock()
			if rest == 0 {
				return
			}
		}
	}
}
