// Package desktop 提供桌面自动化门面：窗口枚举/查找、屏幕截图、鼠标键盘操作。
// 所有底层能力委托给 robotgo / kbinani-screenshot，本包只负责参数校验和坐标换算。
package desktop

import (
	"time"

	"github.com/go-vgo/robotgo"
)

// Controller 桌面控制器
// 构造后配置不可变，各方法为同步阻塞调用，跨调用不持有任何可变状态。
type Controller struct {
	failSafe bool
	pause    time.Duration
}

// New 创建控制器
func New(opts ...Option) *Controller {
	o := ApplyOptions(opts...)
	return &Controller{
		failSafe: o.FailSafe,
		pause:    o.Pause,
	}
}

// FailSafe 返回是否启用防失控保护
func (c *Controller) FailSafe() bool {
	return c.failSafe
}

// Pause 返回每次注入动作后的间隔时间
func (c *Controller) Pause() time.Duration {
	return c.pause
}

// applyCall 以控制器配置为基准应用单次调用的选项
func (c *Controller) applyCall(opts ...Option) *Options {
	o := DefaultOptions()
	o.FailSafe = c.failSafe
	o.Pause = c.pause
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// settle 动作注入后的统一停顿
func (c *Controller) settle(o *Options) {
	if o.Pause > 0 {
		time.Sleep(o.Pause)
	}
}

// Sleep 休眠
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// MilliSleep 毫秒休眠
func MilliSleep(ms int) {
	robotgo.MilliSleep(ms)
}
