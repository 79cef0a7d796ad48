// deskdemo 最小化演示：查找窗口、截图保存、窗口内相对点击、输入文字。
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
		window      = flag.String("window", "", "目标窗口标题 (完全匹配或子串)")
		output      = flag.String("output", "capture.png", "截图保存路径")
		relClick    = flag.String("relative-click", "40,40", "窗口内相对点击坐标, 格式 x,y")
		text        = flag.String("text", "Hello from deskauto!\n", "点击后输入的文字")
		pauseMs     = flag.Int("pause-ms", -1, "动作间隔毫秒 (-1 表示使用配置文件)")
		noFailSafe  = flag.Bool("no-fail-safe", false, "关闭防失控保护")
		showVersion = flag.Bool("version", false, "显示版本信息")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("deskdemo (deskauto)")
		return
	}

	if *window == "" {
		fmt.Println("[ERROR] 缺少目标窗口，请使用 -window 参数指定")
		flag.Usage()
		os.Exit(1)
	}

	x, y, err := parseXY(*relClick)
	if err != nil {
		fmt.Printf("[ERROR] 相对坐标格式错误: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("[WARN] 加载配置失败: %v\n", err)
	}
	logger.Default().SetLevel(logger.ParseLevel(cfg.LogLevel))

	pause := cfg.Pause()
	if *pauseMs >= 0 {
		pause = time.Duration(*pauseMs) * time.Millisecond
	}
	failSafe := cfg.FailSafe
	if *noFailSafe {
		failSafe = false
	}

	if runtime.GOOS == "darwin" {
		if status := desktop.CheckPermissions(); !status.AllGranted {
			fmt.Printf("[WARN] %s\n", status.PermissionInstructions())
		}
	}

	c := desktop.New(
		desktop.WithFailSafe(failSafe),
		desktop.WithPause(pause),
	)

	win, err := c.FindWindow(*window, desktop.WithActivate())
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	logger.Info("找到窗口: %q PID=%d Bounds=%+v", win.Title, win.PID, win.Bounds)

	img, err := c.CaptureWindow(*win)
	if err != nil {
		fmt.Printf("[ERROR] 截图失败: %v\n", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[ERROR] 创建输出目录失败: %v\n", err)
			os.Exit(1)
		}
	}
	if err := desktop.SaveImage(img, *output); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	logger.Info("截图已保存: %s", *output)

	if err := c.Click(x, y, desktop.WithRelativeTo(win)); err != nil {
		fmt.Printf("[ERROR] 点击失败: %v\n", err)
		os.Exit(1)
	}
	if err := c.TypeText(*text); err != nil {
		fmt.Printf("[ERROR] 输入文字失败: %v\n", err)
		os.Exit(1)
	}
	logger.Info("演示完成")
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
