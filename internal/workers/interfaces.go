// Package workers provides abstractions for managing and running
// background workers of the development assistant server.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns once its goroutines are launched.
// Stop asks the worker to finish and blocks until it has exited. Stop must
// be safe to call on a worker that was never started.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { go w.loop() }
//	func (w *MyWorker) Stop() { w.cancel(); w.wg.Wait() }
type Worker interface {
	Run()
	Stop()
}
