// Package diag 在基准运行期间启动 gops agent。
//
// 朴素递归的输入调大之后一次运行可能持续数分钟，此时可以用
//
//	gops stack <pid>
//	gops memstats <pid>
//
// 查看进程状态，而不必重新编译加 pprof。
package diag

import (
	"fmt"
	"os"

	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"
)

// Options gops agent 参数
type Options struct {
	Addr string
	// ConfigDir 存放 pid 端口文件的目录，为空时使用 gops 默认目录
	ConfigDir string
}

// Start 启动 agent，返回的 stop 负责关闭
func Start(opts Options) (stop func(), err error) {
	if err := agent.Listen(agent.Options{
		Addr:      opts.Addr,
		ConfigDir: opts.ConfigDir,
	}); err != nil {
		return nil, fmt.Errorf("start gops agent: %w", err)
	}
	logx.Infow("gops agent listening", logx.Field("pid", os.Getpid()))

	return agent.Close, nil
}
