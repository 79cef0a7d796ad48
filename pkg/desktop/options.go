package desktop

import "time"

// Option 配置选项函数类型
type Option func(*Options)

// Options 控制器与单次操作的配置
type Options struct {
	// FailSafe 光标停在屏幕角落时中止注入动作
	FailSafe bool
	// Pause 每次注入动作后的停顿时间
	Pause time.Duration
	// RelativeTo 坐标参照窗口 (nil 表示屏幕绝对坐标)
	RelativeTo *WindowHandle
	// Duration 鼠标移动插值时长，0 表示瞬时移动
	Duration time.Duration
	// Button 鼠标按键: "left" / "right" / "middle"
	Button string
	// DoubleClick 是否双击
	DoubleClick bool
	// Padding 窗口截图向四周扩展的像素数
	Padding int
	// Activate 操作前是否将目标窗口置于前台
	Activate bool
}

// DefaultOptions 默认配置
func DefaultOptions() *Options {
	return &Options{
		FailSafe:    true,
		Pause:       50 * time.Millisecond,
		RelativeTo:  nil,
		Duration:    0,
		Button:      "left",
		DoubleClick: false,
		Padding:     0,
		Activate:    false,
	}
}

// ApplyOptions 应用配置选项
func ApplyOptions(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFailSafe 设置是否启用防失控保护
func WithFailSafe(enabled bool) Option {
	return func(o *Options) {
		o.FailSafe = enabled
	}
}

// WithPause 设置动作间隔
func WithPause(d time.Duration) Option {
	return func(o *Options) {
		o.Pause = d
	}
}

// WithRelativeTo 设置坐标参照窗口
func WithRelativeTo(h *WindowHandle) Option {
	return func(o *Options) {
		o.RelativeTo = h
	}
}

// WithDuration 设置鼠标移动插值时长
func WithDuration(d time.Duration) Option {
	return func(o *Options) {
		o.Duration = d
	}
}

// WithButton 设置鼠标按键
func WithButton(button string) Option {
	return func(o *Options) {
		o.Button = button
	}
}

// WithDoubleClick 设置双击
func WithDoubleClick() Option {
	return func(o *Options) {
		o.DoubleClick = true
	}
}

// WithPadding 设置窗口截图扩展像素
func WithPadding(padding int) Option {
	return func(o *Options) {
		o.Padding = padding
	}
}

// WithActivate 设置操作前激活目标窗口
func WithActivate() Option {
	return func(o *Options) {
		o.Activate = true
	}
}
