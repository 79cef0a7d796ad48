package desktop

// Point 表示二维坐标点（屏幕绝对坐标）
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region 表示矩形区域 (left, top, width, height)，单位为屏幕像素
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right 右边界坐标
func (r Region) Right() int {
	return r.X + r.Width
}

// Bottom 下边界坐标
func (r Region) Bottom() int {
	return r.Y + r.Height
}

// Contains 判断屏幕点 (x, y) 是否落在区域内（左闭右开，Right/Bottom 为边界外第一列/行）
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty 判断区域是否为空
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// WindowHandle 窗口信息快照
// 由枚举时的窗口状态生成，窗口关闭或移动后即失效，使用前应重新解析。
type WindowHandle struct {
	PID       int    `json:"pid"`
	Title     string `json:"title"`
	OwnerName string `json:"owner_name"`
	Bounds    Region `json:"bounds"`
	IsActive  bool   `json:"is_active"`
}

// Absolute 将窗口相对坐标 (x, y) 换算为屏幕绝对坐标
func (h WindowHandle) Absolute(x, y int) Point {
	return Point{
		X: h.Bounds.X + x,
		Y: h.Bounds.Y + y,
	}
}

// MinInt 返回最小值
func MinInt(values ...int) int {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// MaxInt 返回最大值
func MaxInt(values ...int) int {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
