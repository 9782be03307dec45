// fibbench 用朴素递归计算 fib(30) 15 次，逐行打印结果，最后打印每次调用的平均耗时（秒）。
//
// 运行:
//
//	go run .
//	go run . -f etc/fibbench.yaml
//
// 标准输出只包含结果与平均耗时，日志写到标准错误。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"fibbench/config"
	"fibbench/diag"
	"fibbench/driver"
	"fibbench/report"
)

var configFile = flag.String("f", "", "the config file")

func main() {
	flag.Parse()

	logx.SetWriter(logx.NewWriter(os.Stderr))
	logx.DisableStat()

	err := run(context.Background(), os.Stdout, *configFile)
	logx.Close()
	if code := exitCode(err); code != 0 {
		os.Exit(code)
	}
}

func run(ctx context.Context, out io.Writer, path string) error {
	c, err := config.Load(path)
	if err != nil {
		logx.Errorw("load config", logx.Field("error", err.Error()))
		return err
	}
	level, err := c.Level()
	if err != nil {
		logx.Errorw("parse log level", logx.Field("error", err.Error()))
		return err
	}
	logx.SetLevel(level)

	if c.Diag.Enabled {
		stop, err := diag.Start(diag.Options{Addr: c.Diag.Addr})
		if err != nil {
			logx.Errorw("start diagnostics", logx.Field("error", err.Error()))
			return err
		}
		defer stop()
	}

	d, err := driver.New(out, c.Options())
	if err != nil {
		logx.Errorw("create driver", logx.Field("error", err.Error()))
		return err
	}

	startedAt := time.Now()
	res, err := d.Run(ctx)
	if err != nil {
		logx.WithContext(ctx).Errorw("benchmark failed", logx.Field("error", err.Error()))
		return err
	}

	return publish(ctx, c.Report, report.New(res, startedAt))
}

func publish(ctx context.Context, c config.ReportConf, r *report.Report) error {
	var sinks []report.Sink
	if c.File != "" {
		sinks = append(sinks, report.NewFileSink(c.File))
	}
	if len(c.Kafka.Brokers) > 0 {
		ks := report.NewKafkaSink(c.Kafka.Brokers, c.Kafka.Topic)
		defer ks.Close()
		sinks = append(sinks, ks)
	}
	if c.Mongo.URI != "" {
		ms, err := report.NewMongoSink(ctx, c.Mongo.URI, c.Mongo.Database, c.Mongo.Collection)
		if err != nil {
			logx.Errorw("create mongo sink", logx.Field("error", err.Error()))
			return err
		}
		defer ms.Close(ctx)
		sinks = append(sinks, ms)
	}
	if len(sinks) == 0 {
		return nil
	}

	if err := report.Publish(ctx, r, sinks...); err != nil {
		logx.WithContext(ctx).Errorw("publish report", logx.Field("error", err.Error()))
		return fmt.Errorf("publish report: %w", err)
	}
	logx.Infow("report published", logx.Field("sinks", len(sinks)))
	return nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}
