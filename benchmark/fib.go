// Package benchmark 提供被测的斐波拉契数求值函数。
//
// Fib 是基准测试的主角：朴素递归，故意保留大量重复计算。
// 其余几种算法作为参照实现，用于结果校验和性能对比。
package benchmark

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAlgorithm 表示按名称找不到对应算法
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Func 求第 x 个斐波拉契数
type Func func(x int) int

// MaxInput int 能容纳的最大斐波拉契数下标，fib(93) 超出 int64 会溢出为负数
const MaxInput = 92

// 算法名称
const (
	Naive     = "naive"
	Memo      = "memo"
	DP        = "dp"
	Iterative = "iterative"
)

var algorithms = map[string]Func{
	Naive:     Fib,
	Memo:      FibUseCache,
	DP:        FibUseDynamicProgramming,
	Iterative: FibSimple,
}

// Lookup 按名称返回算法
func Lookup(name string) (Func, error) {
	fn, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return fn, nil
}

// Names 返回全部算法名称，按字典序排列
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fib 递归调用求斐波拉契数，其中有大量重复计算，时间复杂度约 O(2^N), 空间复杂度 O(N)
//
// x <= 1 时直接返回 x，负数输入同样命中这一分支，不会继续递归。
func Fib(x int) int {
	if x <= 1 {
		return x
	}
	return Fib(x-1) + Fib(x-2)
}

// FibUseCache 记忆化递归：每个下标只计算一次，O(N)
//
// 缓存按需增长，不预先按 x 分配。
func FibUseCache(x int) int {
	if x <= 1 {
		return x
	}
	memo := map[int]int{0: 0, 1: 1}
	var walk func(int) int
	walk = func(k int) int {
		if v, ok := memo[k]; ok {
			return v
		}
		v := walk(k-1) + walk(k-2)
		memo[k] = v
		return v
	}
	return walk(x)
}

// FibUseDynamicProgramming 自底向上填表，table[k] 依赖 table[k-1] 与 table[k-2]
func FibUseDynamicProgramming(x int) int {
	if x <= 1 {
		return x
	}
	table := []int{0, 1}
	for k := 2; k <= x; k++ {
		table = append(table, table[k-1]+table[k-2])
	}
	return table[x]
}

// FibSimple 只保留最近两项的滚动计算，O(1) 空间，也是结果校验的参照
func FibSimple(x int) int {
	if x <= 1 {
		return x
	}
	prev, cur := 0, 1
	for k := 2; k <= x; k++ {
		prev, cur = cur, prev+cur
	}
	return cur
}
