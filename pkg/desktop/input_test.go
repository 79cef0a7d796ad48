package desktop

import (
	"testing"
	"time"
)

// TestAbsolute 窗口相对坐标换算为屏幕绝对坐标
func TestAbsolute(t *testing.T) {
	h := WindowHandle{
		Title:  "Notes",
		Bounds: Region{X: 100, Y: 200, Width: 800, Height: 600},
	}

	cases := []struct {
		x, y         int
		wantX, wantY int
	}{
		{0, 0, 100, 200},
		{40, 40, 140, 240},
		{800, 600, 900, 800},
		{-10, -20, 90, 180},
	}

	for _, tc := range cases {
		got := h.Absolute(tc.x, tc.y)
		if got.X != tc.wantX || got.Y != tc.wantY {
			t.Errorf("Absolute(%d, %d): 期望 (%d, %d), 实际 (%d, %d)",
				tc.x, tc.y, tc.wantX, tc.wantY, got.X, got.Y)
		}
	}
}

// TestIsFailSafePoint 屏幕角点判定
func TestIsFailSafePoint(t *testing.T) {
	screen := Region{X: 0, Y: 0, Width: 1920, Height: 1080}

	corners := []Point{
		{0, 0},
		{1919, 0},
		{0, 1079},
		{1919, 1079},
	}
	for _, p := range corners {
		if !isFailSafePoint(p.X, p.Y, screen) {
			t.Errorf("(%d, %d) 应判定为角点", p.X, p.Y)
		}
	}

	inside := []Point{
		{960, 540},
		{0, 540},
		{960, 0},
		{1, 1},
	}
	for _, p := range inside {
		if isFailSafePoint(p.X, p.Y, screen) {
			t.Errorf("(%d, %d) 不应判定为角点", p.X, p.Y)
		}
	}

	if isFailSafePoint(0, 0, Region{}) {
		t.Error("屏幕区域为空时不应判定为角点")
	}
}

// TestOptions 测试配置选项
func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	if !opts.FailSafe {
		t.Error("默认应启用防失控保护")
	}
	if opts.Pause != 50*time.Millisecond {
		t.Errorf("默认间隔错误: %v", opts.Pause)
	}
	if opts.Button != "left" {
		t.Errorf("默认按键错误: %q", opts.Button)
	}

	h := &WindowHandle{Title: "Notes"}
	opts = ApplyOptions(
		WithFailSafe(false),
		WithPause(10*time.Millisecond),
		WithRelativeTo(h),
		WithDuration(time.Second),
		WithButton("right"),
		WithDoubleClick(),
		WithPadding(12),
		WithActivate(),
	)

	if opts.FailSafe {
		t.Error("防失控保护设置错误")
	}
	if opts.Pause != 10*time.Millisecond {
		t.Errorf("间隔设置错误: %v", opts.Pause)
	}
	if opts.RelativeTo != h {
		t.Error("参照窗口设置错误")
	}
	if opts.Duration != time.Second {
		t.Errorf("插值时长设置错误: %v", opts.Duration)
	}
	if opts.Button != "right" {
		t.Errorf("按键设置错误: %q", opts.Button)
	}
	if !opts.DoubleClick {
		t.Error("双击设置错误")
	}
	if opts.Padding != 12 {
		t.Errorf("扩展像素设置错误: %d", opts.Padding)
	}
	if !opts.Activate {
		t.Error("激活设置错误")
	}
}

// TestApplyCall 单次调用选项覆盖控制器配置
func TestApplyCall(t *testing.T) {
	c := New(WithFailSafe(false), WithPause(0))

	o := c.applyCall()
	if o.FailSafe {
		t.Error("应继承控制器的防失控配置")
	}
	if o.Pause != 0 {
		t.Errorf("应继承控制器的间隔配置: %v", o.Pause)
	}

	o = c.applyCall(WithFailSafe(true), WithPause(time.Second))
	if !o.FailSafe || o.Pause != time.Second {
		t.Error("单次调用选项应覆盖控制器配置")
	}
}

// TestMouseOpStaleWindow 参照窗口已关闭时鼠标操作返回 WindowNotFoundError
func TestMouseOpStaleWindow(t *testing.T) {
	c := New(WithPause(0))

	if _, err := c.ListWindows(); err != nil {
		t.Skipf("当前环境无法枚举窗口: %v", err)
	}

	stale := &WindowHandle{
		PID:    999999999,
		Title:  "deskauto_已关闭的窗口_953172",
		Bounds: Region{X: 10, Y: 10, Width: 100, Height: 100},
	}

	err := c.Click(40, 40, WithRelativeTo(stale), WithFailSafe(false))
	if err == nil {
		t.Fatal("失效参照窗口应该返回错误而不是按旧坐标操作")
	}
	if !IsWindowNotFound(err) {
		t.Errorf("应为 WindowNotFoundError, 实际: %v", err)
	}

	err = c.MoveMouse(0, 0, WithRelativeTo(stale), WithFailSafe(false))
	if err == nil || !IsWindowNotFound(err) {
		t.Errorf("MoveMouse 应为 WindowNotFoundError, 实际: %v", err)
	}

	// 滚动不做坐标换算，但同样不应在参照窗口失效后继续注入
	err = c.Scroll(0, 3, WithRelativeTo(stale), WithFailSafe(false))
	if err == nil || !IsWindowNotFound(err) {
		t.Errorf("Scroll 应为 WindowNotFoundError, 实际: %v", err)
	}
}

// TestPreClickDelay 点击前停顿不应超过配置的动作间隔
func TestPreClickDelay(t *testing.T) {
	cases := []struct {
		pause time.Duration
		want  time.Duration
	}{
		{0, 0},
		{10 * time.Millisecond, 10 * time.Millisecond},
		{50 * time.Millisecond, 50 * time.Millisecond},
		{time.Second, 50 * time.Millisecond},
	}

	for _, tc := range cases {
		o := ApplyOptions(WithPause(tc.pause))
		if got := preClickDelay(o); got != tc.want {
			t.Errorf("间隔 %v: 期望停顿 %v, 实际 %v", tc.pause, tc.want, got)
		}
	}
}

// TestMousePosition 测试获取鼠标位置
func TestMousePosition(t *testing.T) {
	c := New()
	pos := c.MousePosition()
	t.Logf("鼠标位置: (%d, %d)", pos.X, pos.Y)
}

// TestSendHotkeyEmpty 空组合键应报错
func TestSendHotkeyEmpty(t *testing.T) {
	c := New(WithPause(0))
	if err := c.SendHotkey(); err == nil {
		t.Error("空组合键应该返回错误")
	}
}
