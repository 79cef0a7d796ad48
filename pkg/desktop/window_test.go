package desktop

import (
	"testing"
)

// TestMatchWindowExactWins 完全匹配优先于子串匹配
func TestMatchWindowExactWins(t *testing.T) {
	windows := []WindowHandle{
		{PID: 1, Title: "Notes App"},
		{PID: 2, Title: "Notes"},
		{PID: 3, Title: "My Notes Editor"},
	}

	match := matchWindow(windows, "Notes")
	if match == nil {
		t.Fatal("应该找到窗口")
	}
	if match.PID != 2 {
		t.Errorf("完全匹配应该优先: 期望 PID=2, 实际 PID=%d (Title=%q)", match.PID, match.Title)
	}
}

// TestMatchWindowSubstring 无完全匹配时取枚举顺序中第一个子串匹配
func TestMatchWindowSubstring(t *testing.T) {
	windows := []WindowHandle{
		{PID: 1, Title: "Terminal"},
		{PID: 2, Title: "Notes App"},
		{PID: 3, Title: "Sticky Notes"},
	}

	match := matchWindow(windows, "notes")
	if match == nil {
		t.Fatal("应该找到窗口")
	}
	if match.PID != 2 {
		t.Errorf("应取枚举顺序中第一个子串匹配: 期望 PID=2, 实际 PID=%d", match.PID)
	}
}

// TestMatchWindowCaseInsensitive 匹配不区分大小写
func TestMatchWindowCaseInsensitive(t *testing.T) {
	windows := []WindowHandle{
		{PID: 1, Title: "NOTES"},
	}

	if match := matchWindow(windows, "notes"); match == nil {
		t.Error("完全匹配应不区分大小写")
	}

	windows = []WindowHandle{
		{PID: 1, Title: "Notes App"},
	}
	if match := matchWindow(windows, "nOtEs"); match == nil {
		t.Error("子串匹配应不区分大小写")
	}
}

// TestMatchWindowNone 无匹配时返回 nil
func TestMatchWindowNone(t *testing.T) {
	windows := []WindowHandle{
		{PID: 1, Title: "Terminal"},
		{PID: 2, Title: "Browser"},
	}

	if match := matchWindow(windows, "NonexistentApp"); match != nil {
		t.Errorf("不应找到窗口, 实际: %q", match.Title)
	}
	if match := matchWindow(nil, "anything"); match != nil {
		t.Error("空列表不应找到窗口")
	}
}

// TestFindWindowNotFound 查询无匹配时返回 WindowNotFoundError
func TestFindWindowNotFound(t *testing.T) {
	c := New()

	if _, err := c.ListWindows(); err != nil {
		t.Skipf("当前环境无法枚举窗口: %v", err)
	}

	_, err := c.FindWindow("deskauto_不存在的窗口_953172")
	if err == nil {
		t.Fatal("应该返回错误")
	}
	if !IsWindowNotFound(err) {
		t.Errorf("应为 WindowNotFoundError, 实际: %v", err)
	}
	t.Logf("错误信息: %v", err)
}

// TestRefreshWindowStale 失效句柄刷新时返回 WindowNotFoundError
func TestRefreshWindowStale(t *testing.T) {
	c := New()

	if _, err := c.ListWindows(); err != nil {
		t.Skipf("当前环境无法枚举窗口: %v", err)
	}

	stale := WindowHandle{
		PID:   999999999,
		Title: "deskauto_已关闭的窗口_953172",
	}

	_, err := c.RefreshWindow(stale)
	if err == nil {
		t.Fatal("失效句柄应该返回错误")
	}
	if !IsWindowNotFound(err) {
		t.Errorf("应为 WindowNotFoundError, 实际: %v", err)
	}
}

// TestListWindows 测试获取窗口列表
func TestListWindows(t *testing.T) {
	c := New()

	windows, err := c.ListWindows()
	if err != nil {
		t.Skipf("当前环境无法枚举窗口: %v", err)
	}

	t.Logf("窗口总数: %d", len(windows))
	for i, win := range windows {
		if i >= 5 {
			break
		}
		t.Logf("  PID=%d, Title=%s, Owner=%s, Bounds=%+v, Active=%v",
			win.PID, win.Title, win.OwnerName, win.Bounds, win.IsActive)
	}
}

// TestIsWindowNotFound 错误类型判定
func TestIsWindowNotFound(t *testing.T) {
	err := &WindowNotFoundError{Query: "Notes"}
	if !IsWindowNotFound(err) {
		t.Error("WindowNotFoundError 应被识别")
	}
	if IsWindowNotFound(nil) {
		t.Error("nil 不应被识别")
	}
	if IsWindowNotFound(ErrFailSafe) {
		t.Error("其他错误不应被识别")
	}
	if err.Error() != "未找到窗口: Notes" {
		t.Errorf("错误信息不符: %q", err.Error())
	}
}
