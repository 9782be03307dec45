// Package config 加载 fibbench 的配置。
//
// 不指定配置文件时全部取默认值，行为与 Input=30、Iterations=15 的朴素递归基准完全一致。
package config

import (
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"fibbench/benchmark"
	"fibbench/driver"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config 顶层配置
	Config struct {
		Input      int    `json:",default=30"`
		Iterations int    `json:",default=15"`
		Algorithm  string `json:",default=naive,options=[naive,memo,dp,iterative]"`
		Verify     bool   `json:",optional"`
		LogLevel   string `json:",default=error,options=[debug,info,error,severe]"`
		Diag       DiagConf
		Report     ReportConf
	}

	// DiagConf gops 诊断 agent
	DiagConf struct {
		Enabled bool   `json:",optional"`
		Addr    string `json:",default=127.0.0.1:0"`
	}

	// ReportConf 报告输出目的地，均为可选
	ReportConf struct {
		File  string `json:",optional"`
		Kafka KafkaConf
		Mongo MongoConf
	}

	// KafkaConf Brokers 为空时不发布
	KafkaConf struct {
		Brokers []string `json:",optional"`
		Topic   string   `json:",default=fibbench.reports"`
	}

	// MongoConf URI 为空时不写库
	MongoConf struct {
		URI        string `json:",optional"`
		Database   string `json:",default=fibbench"`
		Collection string `json:",default=reports"`
	}
)

// Load 读取配置文件；path 为空时只填充默认值
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		if err := conf.FillDefault(&c); err != nil {
			return c, fmt.Errorf("fill defaults: %w", err)
		}
	} else if err := conf.Load(path, &c, conf.UseEnv()); err != nil {
		return c, fmt.Errorf("load %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate 检查取值范围
func (c Config) Validate() error {
	if c.Input < 0 {
		return fmt.Errorf("%w: input must be non-negative, got %d", ErrInvalidConfig, c.Input)
	}
	if c.Input > benchmark.MaxInput {
		return fmt.Errorf("%w: input %d overflows int, max is %d", ErrInvalidConfig, c.Input, benchmark.MaxInput)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	if _, err := benchmark.Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Options 转换为 driver 的运行参数
func (c Config) Options() driver.Options {
	return driver.Options{
		Input:      c.Input,
		Iterations: c.Iterations,
		Algorithm:  c.Algorithm,
		Verify:     c.Verify,
	}
}

// Level 将 LogLevel 映射为 logx 的日志级别
func (c Config) Level() (uint32, error) {
	switch c.LogLevel {
	case "debug":
		return logx.DebugLevel, nil
	case "info":
		return logx.InfoLevel, nil
	case "error", "":
		return logx.ErrorLevel, nil
	case "severe":
		return logx.SevereLevel, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
}
