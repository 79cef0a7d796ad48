// deskclicker 热键驱动的连点器：按住热键连点，或用切换热键开关连点。
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	hook "github.com/robotn/gohook"

	"github.com/zoeyai/deskauto/internal/logger"
	"github.com/zoeyai/deskauto/pkg/desktop"
)

// 支持的特殊热键名
var specialKeys = map[string]bool{
	"shift": true,
	"ctrl":  true,
	"alt":   true,
	"cmd":   true,
	"space": true,
	"tab":   true,
}

func main() {
	var (
		cps          = flag.Float64("cps", 10.0, "按住热键时的每秒点击次数")
		button       = flag.String("button", "left", "鼠标按键: left / right / middle")
		holdHotkey   = flag.String("hotkey", "shift", "按住触发连点的热键")
		toggleHotkey = flag.String("toggle-hotkey", "", "按一下开关连点的热键 (可选)")
		failSafe     = flag.Bool("fail-safe", false, "启用防失控保护 (光标移到屏幕角落中止)")
	)
	flag.Parse()

	if *cps <= 0 {
		fmt.Println("[ERROR] cps 必须为正数")
		os.Exit(1)
	}
	if *button != "left" && *button != "right" && *button != "middle" {
		fmt.Printf("[ERROR] 不支持的鼠标按键: %s\n", *button)
		os.Exit(1)
	}
	for _, key := range []string{*holdHotkey, *toggleHotkey} {
		if key != "" && !specialKeys[key] && len([]rune(key)) != 1 {
			fmt.Printf("[ERROR] 不支持的热键: %s\n", key)
			os.Exit(1)
		}
	}

	clicker := &hotkeyClicker{
		interval: time.Duration(float64(time.Second) / *cps),
		button:   *button,
		// 连点期间不额外停顿，间隔完全由 cps 控制
		controller: desktop.New(
			desktop.WithFailSafe(*failSafe),
			desktop.WithPause(0),
		),
	}

	hook.Register(hook.KeyDown, []string{*holdHotkey}, func(e hook.Event) {
		clicker.setHold(true)
	})
	hook.Register(hook.KeyUp, []string{*holdHotkey}, func(e hook.Event) {
		clicker.setHold(false)
	})
	if *toggleHotkey != "" {
		hook.Register(hook.KeyDown, []string{*toggleHotkey}, func(e hook.Event) {
			clicker.flipToggle()
		})
	}

	msg := fmt.Sprintf("按住 <%s> 连点", *holdHotkey)
	if *toggleHotkey != "" {
		msg += fmt.Sprintf("，按 <%s> 开关连点", *toggleHotkey)
	}
	fmt.Printf("[INFO] %s。Ctrl+C 退出。\n", msg)

	s := hook.Start()
	defer hook.End()
	<-hook.Process(s)
}

// hotkeyClicker 连点器状态机
type hotkeyClicker struct {
	interval   time.Duration
	button     string
	controller *desktop.Controller

	mu          sync.Mutex
	holdEngaged bool
	toggled     bool
	stopCh      chan struct{}
}

func (h *hotkeyClicker) setHold(engaged bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.holdEngaged = engaged
	h.updateState()
}

func (h *hotkeyClicker) flipToggle() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.toggled = !h.toggled
	state := "OFF"
	if h.toggled {
		state = "ON"
	}
	fmt.Printf("[INFO] 连点开关: %s\n", state)
	h.updateState()
}

// updateState 根据按住/开关状态启停点击协程，调用方需持有锁
func (h *hotkeyClicker) updateState() {
	shouldRun := h.holdEngaged || h.toggled
	running := h.stopCh != nil

	if shouldRun && !running {
		h.stopCh = make(chan struct{})
		go h.clickLoop(h.stopCh)
	} else if !shouldRun && running {
		close(h.stopCh)
		h.stopCh = nil
	}
}

func (h *hotkeyClicker) clickLoop(stop chan struct{}) {
	logger.Info("开始连点...")
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			logger.Info("连点停止")
			return
		case <-ticker.C:
			pos := h.controller.MousePosition()
			err := h.controller.Click(pos.X, pos.Y, desktop.WithButton(h.button))
			if err != nil {
				logger.Warn("点击中止: %v", err)
				return
			}
		}
	}
}
