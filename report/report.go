// Package report 把一次基准运行的结果写到外部目的地（文件、Kafka、MongoDB）。
//
// 所有 Sink 都在计时循环结束之后执行，不影响标准输出。
package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/errgroup"

	"fibbench/driver"
)

// Report 一次运行的汇总，JSON 与 BSON 字段名保持一致
type Report struct {
	Input          int       `json:"input" bson:"input"`
	Iterations     int       `json:"iterations" bson:"iterations"`
	Algorithm      string    `json:"algorithm" bson:"algorithm"`
	Result         int       `json:"result" bson:"result"`
	ElapsedNanos   int64     `json:"elapsed_ns" bson:"elapsed_ns"`
	Divisor        int       `json:"divisor" bson:"divisor"`
	AverageSeconds float64   `json:"average_seconds" bson:"average_seconds"`
	StartedAt      time.Time `json:"started_at" bson:"started_at"`
	Host           string    `json:"host" bson:"host"`
}

// New 由测量结果生成报告
func New(res *driver.Result, startedAt time.Time) *Report {
	host, _ := os.Hostname()
	return &Report{
		Input:          res.Input,
		Iterations:     res.Iterations,
		Algorithm:      res.Algorithm,
		Result:         res.Last,
		ElapsedNanos:   int64(res.Elapsed),
		Divisor:        res.Divisor,
		AverageSeconds: res.Average,
		StartedAt:      startedAt.UTC(),
		Host:           host,
	}
}

// Marshal 使用 sonic 编码为 JSON
func (r *Report) Marshal() ([]byte, error) {
	return sonic.Marshal(r)
}

//go:generate mockgen -source=report.go -destination=mock_sink_test.go -package=report

// Sink 报告的输出目的地
type Sink interface {
	Name() string
	Write(ctx context.Context, r *Report) error
}

// Publish 并发写入所有 Sink。
// 单个 Sink 失败不取消其他 Sink，全部错误合并后返回。
func Publish(ctx context.Context, r *Report, sinks ...Sink) error {
	g, ctx := errgroup.WithContext(ctx)
	var (
		mu   sync.Mutex
		errs []error
	)

	for _, sink := range sinks {
		g.Go(func() error {
			if err := sink.Write(ctx, r); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("sink %s: %w", sink.Name(), err))
				mu.Unlock()
			}
			return nil // 不返回错误，避免触发context取消
		})
	}

	g.Wait()
	return errors.Join(errs...)
}
