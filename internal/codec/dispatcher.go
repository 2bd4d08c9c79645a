package codec

import (
	"log"
	"sync"
)

// Dispatcher runs codec commands on a worker goroutine so the event loop is
// never blocked on image IO. Outcomes are logged and optionally reported
// through the Done callback; callers do not wait on them.
type Dispatcher struct {
	engine *Engine
	jobs   chan func()
	wg     sync.WaitGroup

	// Done, when set, is invoked with the written path after a command
	// succeeds. It runs on the worker goroutine.
	Done func(path string)
}

// NewDispatcher starts the worker.
func NewDispatcher(engine *Engine) *Dispatcher {
	if engine == nil {
		engine = NewEngine()
	}
	d := &Dispatcher{
		engine: engine,
		jobs:   make(chan func(), 16),
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for job := range d.jobs {
			job()
		}
	}()
	return d
}

// DispatchCrop queues a crop command.
func (d *Dispatcher) DispatchCrop(path string, req CropRequest) {
	d.enqueue(func() {
		out, err := d.engine.Crop(path, req)
		if err != nil {
			log.Printf("codec: %v", err)
			return
		}
		if d.Done != nil {
			d.Done(out)
		}
	})
}

// DispatchExport queues a batch export command.
func (d *Dispatcher) DispatchExport(path string, req ExportRequest) {
	d.enqueue(func() {
		out, err := d.engine.Export(path, req)
		if err != nil {
			log.Printf("codec: %v", err)
			return
		}
		if d.Done != nil {
			d.Done(out)
		}
	})
}

func (d *Dispatcher) enqueue(job func()) {
	select {
	case d.jobs <- job:
	default:
		// The queue is sized for interactive use; dropping under pressure is
		// preferable to stalling pointer capture.
		log.Print("codec: queue full, command dropped")
	}
}

// Close drains outstanding commands and stops the worker.
func (d *Dispatcher) Close() {
	close(d.jobs)
	d.wg.Wait()
}
