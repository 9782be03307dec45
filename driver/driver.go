// Package driver 反复调用求值函数并测量平均耗时。
//
// 输出格式：每次调用的结果各占一行，最后一行是以秒为单位的平均耗时。
// 平均耗时的除数是循环结束时循环变量的取值（迭代次数减一），
// 默认 15 次迭代时除以 14 而不是 15，这一点必须保持不变。
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/timex"

	"fibbench/benchmark"
)

var (
	// ErrUndefinedAverage 只迭代一次时循环变量为 0，平均耗时无法计算
	ErrUndefinedAverage = errors.New("average undefined: last loop index is 0")
	// ErrResultMismatch 结果与参照算法不一致
	ErrResultMismatch = errors.New("result does not match reference algorithm")
	// ErrInvalidIterations 迭代次数必须为正
	ErrInvalidIterations = errors.New("iterations must be positive")
)

// Clock 返回单调递增的相对时间
type Clock func() time.Duration

// Options 描述一次基准运行
type Options struct {
	Input      int
	Iterations int
	Algorithm  string
	// Verify 为 true 时，计时结束后用迭代算法校验最后一次结果
	Verify bool
}

// Result 一次运行的测量结果
type Result struct {
	Input      int
	Iterations int
	Algorithm  string
	Last       int
	Elapsed    time.Duration
	Divisor    int
	// Average 平均耗时，单位秒
	Average float64
}

// Driver 基准驱动，单 goroutine 顺序执行
type Driver struct {
	out  io.Writer
	eval benchmark.Func
	opts Options
	now  Clock
}

// New 创建 Driver，默认使用 go-zero 的相对单调时钟
func New(out io.Writer, opts Options) (*Driver, error) {
	if opts.Iterations < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, opts.Iterations)
	}
	if opts.Algorithm == "" {
		opts.Algorithm = benchmark.Naive
	}
	eval, err := benchmark.Lookup(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	return &Driver{
		out:  out,
		eval: eval,
		opts: opts,
		now:  timex.Now,
	}, nil
}

// WithClock 替换时钟，测试中用来固定耗时
func (d *Driver) WithClock(now Clock) *Driver {
	d.now = now
	return d
}

// Run 执行全部迭代，逐行打印结果，再打印平均耗时。
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		Input:      d.opts.Input,
		Iterations: d.opts.Iterations,
		Algorithm:  d.opts.Algorithm,
	}

	var last int
	start := d.now()
	for i := range d.opts.Iterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		last = i
		res.Last = d.eval(d.opts.Input)
		if _, err := fmt.Fprintln(d.out, res.Last); err != nil {
			return nil, fmt.Errorf("write result: %w", err)
		}
	}
	res.Elapsed = d.now() - start
	res.Divisor = last

	if res.Divisor == 0 {
		return res, ErrUndefinedAverage
	}
	res.Average = res.Elapsed.Seconds() / float64(res.Divisor)
	if _, err := fmt.Fprintln(d.out, strconv.FormatFloat(res.Average, 'f', -1, 64)); err != nil {
		return nil, fmt.Errorf("write average: %w", err)
	}

	logx.WithContext(ctx).Infow("benchmark finished",
		logx.Field("algorithm", res.Algorithm),
		logx.Field("input", res.Input),
		logx.Field("iterations", res.Iterations),
		logx.Field("elapsed", res.Elapsed.String()),
		logx.Field("average", res.Average),
	)

	if d.opts.Verify {
		if want := benchmark.FibSimple(d.opts.Input); want != res.Last {
			return res, fmt.Errorf("%w: got %d, want %d", ErrResultMismatch, res.Last, want)
		}
	}

	return res, nil
}
