// deskagent 代理式循环：反复截图、点击、输入、等待，用于驱动窗口内的对话类应用。
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/zoeyai/deskauto/internal/logger"
	"github.com/zoeyai/deskauto/pkg/config"
	"github.com/zoeyai/deskauto/pkg/desktop"
)

func main() {
	var (
		window      = flag.String("window", "", "目标窗口标题")
		focusClick  = flag.String("focus-click", "40,40", "第一次点击的相对坐标 (如聚焦输入框)")
		submitClick = flag.String("submit-click", "80,80", "第二次点击的相对坐标 (如提交按钮)")
		text        = flag.String("text", "Automated message", "聚焦后输入的文字")
		iterations  = flag.Int("iterations", 5, "循环次数")
		intervalMs  = flag.Int("interval-ms", 1500, "每轮之间的等待毫秒数")
		outputDir   = flag.String("output-dir", "captures", "每轮截图的保存目录")
		pauseMs     = flag.Int("pause-ms", 50, "底层动作之间的停顿毫秒数")
		usePaste    = flag.Bool("paste", false, "用剪贴板粘贴代替逐字输入 (长文本更快)")
	)
	flag.Parse()

	if *window == "" {
		fmt.Println("[ERROR] 缺少目标窗口，请使用 -window 参数指定")
		flag.Usage()
		os.Exit(1)
	}

	focusX, focusY, err := parseXY(*focusClick)
	if err != nil {
		fmt.Printf("[ERROR] focus-click 格式错误: %v\n", err)
		os.Exit(1)
	}
	submitX, submitY, err := parseXY(*submitClick)
	if err != nil {
		fmt.Printf("[ERROR] submit-click 格式错误: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("[WARN] 加载配置失败: %v\n", err)
	}
	logger.Default().SetLevel(logger.ParseLevel(cfg.LogLevel))

	if runtime.GOOS == "darwin" {
		if status := desktop.CheckPermissions(); !status.AllGranted {
			fmt.Printf("[WARN] %s\n", status.PermissionInstructions())
		}
	}

	c := desktop.New(
		desktop.WithFailSafe(cfg.FailSafe),
		desktop.WithPause(time.Duration(*pauseMs)*time.Millisecond),
	)

	win, err := c.FindWindow(*window, desktop.WithActivate())
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	logger.Info("目标窗口: %q PID=%d", win.Title, win.PID)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("[ERROR] 创建输出目录失败: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *iterations; i++ {
		logger.Info("=== 第 %d/%d 轮 ===", i+1, *iterations)

		// 每轮重新解析窗口，避免窗口移动后用旧坐标
		win, err = c.RefreshWindow(*win)
		if err != nil {
			fmt.Printf("[ERROR] 窗口已失效: %v\n", err)
			os.Exit(1)
		}

		start := time.Now()
		img, err := c.CaptureWindow(*win)
		logger.Action("capture", err, time.Since(start), win.Title)
		if err != nil {
			fmt.Printf("[ERROR] 截图失败: %v\n", err)
			os.Exit(1)
		}

		imagePath := filepath.Join(*outputDir, fmt.Sprintf("iteration_%03d.png", i))
		if err := desktop.SaveImage(img, imagePath); err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		logger.Info("截图已保存: %s", imagePath)

		if err := focusAndType(c, win, focusX, focusY, *text, *usePaste); err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		if err := c.Click(submitX, submitY, desktop.WithRelativeTo(win)); err != nil {
			fmt.Printf("[ERROR] 提交点击失败: %v\n", err)
			os.Exit(1)
		}

		if i < *iterations-1 {
			desktop.Sleep(time.Duration(*intervalMs) * time.Millisecond)
		}
	}

	logger.Info("循环完成")
}

// focusAndType 点击聚焦位置后输入文字
func focusAndType(c *desktop.Controller, win *desktop.WindowHandle, x, y int, text string, paste bool) error {
	if err := c.Click(x, y, desktop.WithRelativeTo(win)); err != nil {
		return fmt.Errorf("聚焦点击失败: %w", err)
	}
	if text == "" {
		return nil
	}

	if paste {
		if err := c.PasteText(text); err != nil {
			return fmt.Errorf("粘贴文字失败: %w", err)
		}
		return nil
	}
	if err := c.TypeText(text); err != nil {
		return fmt.Errorf("输入文字失败: %w", err)
	}
	return nil
}

// parseXY 解析 "x,y" 形式的坐标
func parseXY(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("应为 x,y 形式: %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("x 不是整数: %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("y 不是整数: %q", parts[1])
	}
	return x, y, nil
}
