package service

import (
	"context"

	"shift-wage-bot/pkg/workerpool"
)

// AsyncService выполняет загрузку данных в пуле воркеров,
// сам расчёт остаётся синхронным.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// Go отправляет fn в пул и сразу возвращает канал с результатом.
func (a *AsyncService) Go(ctx context.Context, fn func() (any, error)) <-chan workerpool.Result {
	resCh := make(chan workerpool.Result, 1)
	if a == nil || a.Pool == nil {
		v, err := fn()
		resCh <- workerpool.Result{Value: v, Err: err}
		return resCh
	}
	if err := a.Pool.Submit(ctx, workerpool.Task{Fn: fn, ResultC: resCh}); err != nil {
		resCh <- workerpool.Result{Err: err}
	}
	return resCh
}

// Await ждёт результат; отменённый ctx имеет приоритет над готовым результатом.
func Await(ctx context.Context, ch <-chan workerpool.Result) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case res := <-ch:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	return Await(ctx, a.Go(ctx, fn))
}
