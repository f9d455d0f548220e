package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// PixelTask is a contiguous range of pixel indices [Start, End). Index i maps
// to pixel (i / height, i % height), so one task of height pixels is a column.
type PixelTask struct {
	TaskID int
	Start  int
	End    int
}

// PixelResult reports a finished task
type PixelResult struct {
	TaskID int
	Pixels int
}

// WorkerPool manages parallel pixel rendering. Workers write straight into the
// shared buffer; task ranges never overlap.
type WorkerPool struct {
	taskQueue   chan PixelTask
	resultQueue chan PixelResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual pixel tasks
type Worker struct {
	ID          int
	scene       *scene.Scene
	integrator  integrator.Integrator
	buffer      *PixelBuffer
	progress    *atomic.Int64
	taskQueue   chan PixelTask
	resultQueue chan PixelResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numTasks sizes the queues so submitting never blocks.
func NewWorkerPool(sc *scene.Scene, integ integrator.Integrator, buffer *PixelBuffer, progress *atomic.Int64, numWorkers, numTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan PixelTask, numTasks),
		resultQueue: make(chan PixelResult, numTasks),
		numWorkers:  numWorkers,
	}

	// Create workers
	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			scene:       sc,
			integrator:  integ,
			buffer:      buffer,
			progress:    progress,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to drain and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a pixel task to the worker pool
func (wp *WorkerPool) SubmitTask(task PixelTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed task result
func (wp *WorkerPool) GetResult() (PixelResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	cam := w.scene.Camera
	for task := range w.taskQueue {
		for i := task.Start; i < task.End; i++ {
			x, y := i/cam.Height, i%cam.Height
			ray := PrimeRay(cam, x, y)
			w.buffer.Set(x, y, w.integrator.RayColor(ray, w.scene).ToRGBA())
			w.progress.Add(1)
		}

		w.resultQueue <- PixelResult{TaskID: task.TaskID, Pixels: task.End - task.Start}
	}
}
