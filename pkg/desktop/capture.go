package desktop

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// CaptureScreen 截取显示器全屏图像
// monitor 为 0 时截取所有显示器的并集区域，1..n 对应各物理显示器，
// 越界时收敛到有效范围。
func (c *Controller) CaptureScreen(monitor int) (image.Image, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("没有可用的显示器")
	}

	if monitor <= 0 {
		return c.CaptureRegion(virtualScreen())
	}

	idx := MinInt(monitor, n) - 1
	img, err := screenshot.CaptureRect(screenshot.GetDisplayBounds(idx))
	if err != nil {
		return nil, fmt.Errorf("截屏失败: %w", err)
	}
	return img, nil
}

// CaptureRegion 截取屏幕区域
// 宽高不足 1 像素时按 1 像素处理。
func (c *Controller) CaptureRegion(r Region) (image.Image, error) {
	w := MaxInt(1, r.Width)
	h := MaxInt(1, r.Height)

	img, err := screenshot.CaptureRect(image.Rect(r.X, r.Y, r.X+w, r.Y+h))
	if err != nil {
		return nil, fmt.Errorf("截取区域失败: %w", err)
	}
	return img, nil
}

// CaptureWindow 截取窗口图像
// WithPadding(n) 将截取区域向四周各扩展 n 像素（收敛到屏幕范围内）；
// WithActivate() 先将窗口置于前台。窗口已关闭时返回 WindowNotFoundError。
func (c *Controller) CaptureWindow(target WindowHandle, opts ...Option) (image.Image, error) {
	o := c.applyCall(opts...)
	if o.Padding < 0 {
		return nil, fmt.Errorf("扩展像素不能为负数: %d", o.Padding)
	}

	region, _, err := c.windowCaptureRegion(target, o)
	if err != nil {
		return nil, err
	}
	return c.CaptureRegion(region)
}

// WindowCaptureRegion 计算窗口截图的实际区域（含扩展并收敛到屏幕范围）
// 返回截取区域和刷新后的窗口句柄。
func (c *Controller) WindowCaptureRegion(target WindowHandle, opts ...Option) (Region, *WindowHandle, error) {
	o := c.applyCall(opts...)
	if o.Padding < 0 {
		return Region{}, nil, fmt.Errorf("扩展像素不能为负数: %d", o.Padding)
	}
	return c.windowCaptureRegion(target, o)
}

func (c *Controller) windowCaptureRegion(target WindowHandle, o *Options) (Region, *WindowHandle, error) {
	var fresh *WindowHandle
	var err error
	if o.Activate {
		fresh, err = c.ActivateWindow(target)
	} else {
		fresh, err = c.RefreshWindow(target)
	}
	if err != nil {
		return Region{}, nil, err
	}

	return padRegion(fresh.Bounds, o.Padding, virtualScreen()), fresh, nil
}

// padRegion 将区域向四周各扩展 padding 像素，收敛到 screen 范围内
func padRegion(r Region, padding int, screen Region) Region {
	left := r.X - padding
	top := r.Y - padding
	right := r.Right() + padding
	bottom := r.Bottom() + padding

	if !screen.Empty() {
		left = MaxInt(left, screen.X)
		top = MaxInt(top, screen.Y)
		right = MinInt(right, screen.Right())
		bottom = MinInt(bottom, screen.Bottom())
	}

	return Region{
		X:      left,
		Y:      top,
		Width:  MaxInt(1, right-left),
		Height: MaxInt(1, bottom-top),
	}
}

// virtualScreen 所有显示器的并集区域
func virtualScreen() Region {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return Region{}
	}

	bounds := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		bounds = bounds.Union(screenshot.GetDisplayBounds(i))
	}

	return Region{
		X:      bounds.Min.X,
		Y:      bounds.Min.Y,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}

// DisplayCount 获取显示器数量
func DisplayCount() int {
	return screenshot.NumActiveDisplays()
}
