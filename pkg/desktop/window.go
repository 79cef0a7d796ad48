package desktop

import (
	"fmt"
	"strings"

	"github.com/go-vgo/robotgo"
)

// ListWindows 获取当前可见窗口列表（按枚举顺序）
// filter: 可选的标题/进程名过滤子串（不区分大小写）
func (c *Controller) ListWindows(filter ...string) ([]WindowHandle, error) {
	pids, err := robotgo.Pids()
	if err != nil {
		return nil, fmt.Errorf("获取进程列表失败: %w", err)
	}

	filterStr := ""
	if len(filter) > 0 {
		filterStr = strings.ToLower(filter[0])
	}

	activeTitle := robotgo.GetTitle()

	var windows []WindowHandle
	for _, pid := range pids {
		title := robotgo.GetTitle(pid)
		if strings.TrimSpace(title) == "" {
			continue
		}

		x, y, w, h := robotgo.GetBounds(pid)
		if w == 0 && h == 0 {
			continue
		}

		owner := processName(pid)
		if filterStr != "" {
			titleLower := strings.ToLower(title)
			ownerLower := strings.ToLower(owner)
			if !strings.Contains(titleLower, filterStr) && !strings.Contains(ownerLower, filterStr) {
				continue
			}
		}

		windows = append(windows, WindowHandle{
			PID:       pid,
			Title:     title,
			OwnerName: owner,
			Bounds: Region{
				X:      x,
				Y:      y,
				Width:  w,
				Height: h,
			},
			IsActive: activeTitle != "" && title == activeTitle,
		})
	}

	return windows, nil
}

// FindWindow 按标题查找窗口
// 不区分大小写；完全相同的标题优先，否则取枚举顺序中第一个包含 query 的窗口。
// WithActivate 选项会在返回前将命中的窗口置于前台。
func (c *Controller) FindWindow(query string, opts ...Option) (*WindowHandle, error) {
	o := c.applyCall(opts...)

	windows, err := c.ListWindows()
	if err != nil {
		return nil, err
	}

	match := matchWindow(windows, query)
	if match == nil {
		return nil, &WindowNotFoundError{Query: query}
	}

	if o.Activate {
		return c.ActivateWindow(*match)
	}
	return match, nil
}

// matchWindow 标题匹配核心：先找完全匹配，再找子串匹配（均不区分大小写）
func matchWindow(windows []WindowHandle, query string) *WindowHandle {
	queryLower := strings.ToLower(query)

	for i := range windows {
		if strings.ToLower(windows[i].Title) == queryLower {
			return &windows[i]
		}
	}
	for i := range windows {
		if strings.Contains(strings.ToLower(windows[i].Title), queryLower) {
			return &windows[i]
		}
	}
	return nil
}

// ActivateWindow 将窗口置于前台并返回刷新后的句柄
func (c *Controller) ActivateWindow(target WindowHandle) (*WindowHandle, error) {
	fresh, err := c.RefreshWindow(target)
	if err != nil {
		return nil, err
	}

	if err := robotgo.ActivePid(fresh.PID); err != nil {
		return nil, fmt.Errorf("激活窗口失败: %w", err)
	}
	c.settle(c.applyCall())

	fresh.IsActive = true
	return fresh, nil
}

// RefreshWindow 重新解析窗口，返回最新的几何信息快照
// 优先按 PID 解析，PID 已失效时回退到标题匹配；都找不到时返回 WindowNotFoundError。
func (c *Controller) RefreshWindow(target WindowHandle) (*WindowHandle, error) {
	if target.PID > 0 && isProcessRunning(target.PID) {
		title := robotgo.GetTitle(target.PID)
		if strings.TrimSpace(title) != "" {
			x, y, w, h := robotgo.GetBounds(target.PID)
			if w > 0 || h > 0 {
				return &WindowHandle{
					PID:       target.PID,
					Title:     title,
					OwnerName: target.OwnerName,
					Bounds: Region{
						X:      x,
						Y:      y,
						Width:  w,
						Height: h,
					},
					IsActive: title == robotgo.GetTitle(),
				}, nil
			}
		}
	}

	// PID 失效，回退到标题解析
	if target.Title != "" {
		windows, err := c.ListWindows()
		if err != nil {
			return nil, err
		}
		if match := matchWindow(windows, target.Title); match != nil {
			return match, nil
		}
	}

	return nil, &WindowNotFoundError{Query: target.Title}
}

// ActiveWindowTitle 获取当前活动窗口标题
func ActiveWindowTitle() string {
	return robotgo.GetTitle()
}
