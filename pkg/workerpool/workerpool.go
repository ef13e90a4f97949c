package workerpool

import (
	"context"
	"errors"
	"sync"
)

var ErrPoolClosed = errors.New("worker pool closed")

// Task описывает универсальную задачу для пула.
// Fn должен быть безопасен для конкурентного выполнения,
// ResultC — канал для возврата результата (если нужен), с буфером хотя бы 1.
type Task struct {
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewWorkerPool создаёт пул с N воркерами
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	wp.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.tasks:
			res, err := task.Fn()
			if task.ResultC != nil {
				task.ResultC <- Result{Value: res, Err: err}
			}
		}
	}
}

// Submit ставит задачу в очередь. Блокируется, пока очередь заполнена,
// и возвращает ошибку при отмене ctx или закрытом пуле.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case <-wp.ctx.Done():
		return ErrPoolClosed
	default:
	}
	select {
	case wp.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return ErrPoolClosed
	}
}

// Close останавливает воркеры и ждёт завершения текущих задач.
// Задачи, оставшиеся в очереди, не выполняются.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.cancel()
		wp.wg.Wait()
	})
}
