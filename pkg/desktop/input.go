package desktop

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"
)

// resolvePoint 将调用坐标解析为屏幕绝对坐标
// 设置了 RelativeTo 时先重新解析参照窗口，再叠加其左上角偏移；
// 参照窗口已关闭时返回 WindowNotFoundError。
func (c *Controller) resolvePoint(x, y int, o *Options) (int, int, error) {
	if o.RelativeTo == nil {
		return x, y, nil
	}

	fresh, err := c.RefreshWindow(*o.RelativeTo)
	if err != nil {
		return 0, 0, err
	}

	abs := fresh.Absolute(x, y)
	return abs.X, abs.Y, nil
}

// checkFailSafe 防失控检查：光标停在主屏任一角落时中止动作
func (c *Controller) checkFailSafe(o *Options) error {
	if !o.FailSafe {
		return nil
	}

	x, y := robotgo.Location()
	if isFailSafePoint(x, y, primaryScreen()) {
		return ErrFailSafe
	}
	return nil
}

// isFailSafePoint 判断 (x, y) 是否为屏幕角点
func isFailSafePoint(x, y int, screen Region) bool {
	if screen.Empty() {
		return false
	}

	left := x == screen.X
	right := x == screen.Right()-1
	top := y == screen.Y
	bottom := y == screen.Bottom()-1

	return (left || right) && (top || bottom)
}

// primaryScreen 主显示器区域
func primaryScreen() Region {
	if screenshot.NumActiveDisplays() == 0 {
		return Region{}
	}
	b := screenshot.GetDisplayBounds(0)
	return Region{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}
}

// ==================== 鼠标操作 ====================

// MoveMouse 移动鼠标到 (x, y)
// WithDuration(d) 大于 0 时使用插值平滑移动。
func (c *Controller) MoveMouse(x, y int, opts ...Option) error {
	o := c.applyCall(opts...)

	absX, absY, err := c.resolvePoint(x, y, o)
	if err != nil {
		return err
	}
	if err := c.checkFailSafe(o); err != nil {
		return err
	}

	if o.Duration > 0 {
		robotgo.MoveSmooth(absX, absY)
	} else {
		robotgo.Move(absX, absY)
	}
	c.settle(o)
	return nil
}

// Click 在 (x, y) 点击
func (c *Controller) Click(x, y int, opts ...Option) error {
	o := c.applyCall(opts...)

	absX, absY, err := c.resolvePoint(x, y, o)
	if err != nil {
		return err
	}
	if err := c.checkFailSafe(o); err != nil {
		return err
	}

	if o.Duration > 0 {
		robotgo.MoveSmooth(absX, absY)
	} else {
		robotgo.Move(absX, absY)
	}
	if d := preClickDelay(o); d > 0 {
		time.Sleep(d) // 短暂延迟确保鼠标到位
	}

	robotgo.Click(o.Button, o.DoubleClick)
	c.settle(o)
	return nil
}

// preClickDelay 鼠标到位后、按下前的停顿时间
// 不超过配置的动作间隔，间隔为 0 时不停顿（连点场景由调用方控制节奏）。
func preClickDelay(o *Options) time.Duration {
	const max = 50 * time.Millisecond
	if o.Pause < max {
		return o.Pause
	}
	return max
}

// DoubleClick 在 (x, y) 双击
func (c *Controller) DoubleClick(x, y int, opts ...Option) error {
	opts = append(opts, WithDoubleClick())
	return c.Click(x, y, opts...)
}

// MouseDown 在 (x, y) 按下鼠标按键
func (c *Controller) MouseDown(x, y int, opts ...Option) error {
	o := c.applyCall(opts...)

	absX, absY, err := c.resolvePoint(x, y, o)
	if err != nil {
		return err
	}
	if err := c.checkFailSafe(o); err != nil {
		return err
	}

	robotgo.Move(absX, absY)
	if err := robotgo.Toggle(o.Button, "down"); err != nil {
		return fmt.Errorf("按下鼠标失败: %w", err)
	}
	c.settle(o)
	return nil
}

// MouseUp 在 (x, y) 释放鼠标按键
func (c *Controller) MouseUp(x, y int, opts ...Option) error {
	o := c.applyCall(opts...)

	absX, absY, err := c.resolvePoint(x, y, o)
	if err != nil {
		return err
	}
	if err := c.checkFailSafe(o); err != nil {
		return err
	}

	robotgo.Move(absX, absY)
	if err := robotgo.Toggle(o.Button, "up"); err != nil {
		return fmt.Errorf("释放鼠标失败: %w", err)
	}
	c.settle(o)
	return nil
}

// Drag 从当前位置拖拽到 (x, y)
func (c *Controller) Drag(x, y int, opts ...Option) error {
	o := c.applyCall(opts...)

	absX, absY, err := c.resolvePoint(x, y, o)
	if err != nil {
		return err
	}
	if err := c.checkFailSafe(o); err != nil {
		return err
	}

	robotgo.DragSmooth(absX, absY, o.Button)
	c.settle(o)
	return nil
}

// Scroll 滚动滚轮 (dx, dy)
// 滚动量不做坐标换算，但设置了 RelativeTo 时仍会确认参照窗口存活。
func (c *Controller) Scroll(dx, dy int, opts ...Option) error {
	o := c.applyCall(opts...)

	if o.RelativeTo != nil {
		if _, err := c.RefreshWindow(*o.RelativeTo); err != nil {
			return err
		}
	}
	if err := c.checkFailSafe(o); err != nil {
		return err
	}

	robotgo.Scroll(dx, dy)
	c.settle(o)
	return nil
}

// MousePosition 获取当前鼠标位置
func (c *Controller) MousePosition() Point {
	x, y := robotgo.Location()
	return Point{X: x, Y: y}
}

// ==================== 键盘操作 ====================

// TypeText 输入文字（直接透传，无坐标换算）
func (c *Controller) TypeText(text string, opts ...Option) error {
	o := c.applyCall(opts...)

	if err := c.checkFailSafe(o); err != nil {
		return err
	}

	robotgo.TypeStr(text)
	c.settle(o)
	return nil
}

// SendHotkey 发送组合键，如 SendHotkey("ctrl", "c")
// 最后一个参数为主键，其余为修饰键。
func (c *Controller) SendHotkey(keys ...string) error {
	if len(keys) == 0 {
		return fmt.Errorf("组合键不能为空")
	}

	o := c.applyCall()
	if err := c.checkFailSafe(o); err != nil {
		return err
	}

	var err error
	if len(keys) == 1 {
		err = robotgo.KeyTap(keys[0])
	} else {
		err = robotgo.KeyTap(keys[len(keys)-1], keys[:len(keys)-1])
	}
	if err != nil {
		return fmt.Errorf("发送组合键失败: %w", err)
	}
	c.settle(o)
	return nil
}

// PasteText 通过剪贴板粘贴文字（比逐字输入更快，适合长文本）
func (c *Controller) PasteText(text string) error {
	if err := robotgo.WriteAll(text); err != nil {
		return fmt.Errorf("写入剪贴板失败: %w", err)
	}

	if runtime.GOOS == "darwin" {
		return c.SendHotkey("cmd", "v")
	}
	return c.SendHotkey("ctrl", "v")
}

// ReadClipboard 读取剪贴板
func ReadClipboard() (string, error) {
	return robotgo.ReadAll()
}
