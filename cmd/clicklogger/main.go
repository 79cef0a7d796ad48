// clicklogger 点击采集器：左键按下时截取目标窗口并标注按下位置，
// 释放时把窗口相对的按下/释放坐标追加写入 CSV。
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	hook "github.com/robotn/gohook"

	"github.com/zoeyai/deskauto/internal/logger"
	"github.com/zoeyai/deskauto/pkg/desktop"
)

func main() {
	var (
		window    = flag.String("window", "", "目标窗口标题子串 (不区分大小写)")
		padding   = flag.Int("padding", 0, "窗口截图向四周扩展的像素数")
		outputDir = flag.String("output-dir", "captures", "截图保存目录")
		csvPath   = flag.String("csv", "captures.csv", "点击记录 CSV 文件路径")
	)
	flag.Parse()

	if *window == "" {
		fmt.Println("[ERROR] 缺少目标窗口，请使用 -window 参数指定")
		flag.Usage()
		os.Exit(1)
	}
	if *padding < 0 {
		fmt.Println("[ERROR] padding 不能为负数")
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("[ERROR] 创建输出目录失败: %v\n", err)
		os.Exit(1)
	}
	if err := initCSV(*csvPath); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}

	// 截图和落盘已在点击回调里完成，动作停顿只会拖慢采集
	c := desktop.New(desktop.WithPause(0), desktop.WithFailSafe(false))

	win, err := c.FindWindow(*window, desktop.WithActivate())
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	logger.Info("跟踪窗口: %q at (%d, %d)", win.Title, win.Bounds.X, win.Bounds.Y)

	rec := &recorder{
		controller: c,
		target:     *win,
		padding:    *padding,
		outputDir:  *outputDir,
		csvPath:    *csvPath,
	}

	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		if e.Button == hook.MouseMap["left"] {
			rec.onPress(int(e.X), int(e.Y))
		}
	})
	hook.Register(hook.MouseUp, []string{}, func(e hook.Event) {
		if e.Button == hook.MouseMap["left"] {
			rec.onRelease(int(e.X), int(e.Y))
		}
	})

	fmt.Println("[INFO] 左键按下截取目标窗口，释放写入 CSV。Ctrl+C 退出。")
	s := hook.Start()
	defer hook.End()
	<-hook.Process(s)
}

// initCSV 不存在时创建 CSV 并写入表头
func initCSV(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建 CSV 失败: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	return w.Write([]string{"image_path", "press_x", "press_y", "release_x", "release_y", "note"})
}

// recorder 一次按下-释放周期的采集状态
type recorder struct {
	controller *desktop.Controller
	target     desktop.WindowHandle
	padding    int
	outputDir  string
	csvPath    string

	mu          sync.Mutex
	pressWin    *desktop.WindowHandle
	pressPoint  *desktop.Point
	currentPath string
}

func (r *recorder) onPress(x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	region, fresh, err := r.controller.WindowCaptureRegion(r.target, desktop.WithPadding(r.padding))
	if err != nil {
		logger.Warn("窗口解析失败: %v", err)
		return
	}
	if !fresh.Bounds.Contains(x, y) {
		logger.Debug("忽略窗口外的按下: (%d, %d)", x, y)
		return
	}

	img, err := r.controller.CaptureRegion(region)
	if err != nil {
		logger.Warn("截图失败: %v", err)
		return
	}

	// 标注按下位置（换算到截图坐标系）
	marked := desktop.DrawMarker(img, desktop.Point{X: x - region.X, Y: y - region.Y}, "press")

	ts := time.Now().Format("20060102_150405.000000")
	path := filepath.Join(r.outputDir, fmt.Sprintf("snap_%s.png", ts))
	if err := desktop.SaveImage(marked, path); err != nil {
		logger.Warn("保存截图失败: %v", err)
		return
	}
	logger.Info("已截取: %s", path)

	r.pressWin = fresh
	r.pressPoint = &desktop.Point{X: x - fresh.Bounds.X, Y: y - fresh.Bounds.Y}
	r.currentPath = path
}

func (r *recorder) onRelease(x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pressWin == nil || r.pressPoint == nil {
		return
	}

	releaseX := x - r.pressWin.Bounds.X
	releaseY := y - r.pressWin.Bounds.Y

	f, err := os.OpenFile(r.csvPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		logger.Warn("打开 CSV 失败: %v", err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	err = w.Write([]string{
		r.currentPath,
		fmt.Sprint(r.pressPoint.X),
		fmt.Sprint(r.pressPoint.Y),
		fmt.Sprint(releaseX),
		fmt.Sprint(releaseY),
		"",
	})
	w.Flush()
	if err != nil || w.Error() != nil {
		logger.Warn("写入 CSV 失败: %v", err)
	} else {
		logger.Info("已记录点击: %s", r.csvPath)
	}

	r.pressWin = nil
	r.pressPoint = nil
	r.currentPath = ""
}
