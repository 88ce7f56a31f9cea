package worker

import "sync"

// Task is a unit of background work, currently cache invalidation
// submitted off the request path.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines. Stop drains
// the queue and waits for in-flight tasks.
type Pool interface {
	Submit(Task)
	Stop()
}

type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

// NewPool starts n workers; n <= 0 falls back to a single worker.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.loop()
	}
	return p
}

func (p *pool) loop() {
	defer p.wg.Done()
	for task := range p.tasks {
		if task != nil {
			task()
		}
	}
}

func (p *pool) Submit(t Task) {
	p.tasks <- t
}

func (p *pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
