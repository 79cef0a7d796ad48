package desktop

import (
	"errors"
	"fmt"
)

// ErrFailSafe 防失控保护触发：光标停在屏幕角落，动作被中止
var ErrFailSafe = errors.New("防失控保护触发: 光标位于屏幕角落")

// WindowNotFoundError 按标题查询或句柄解析找不到存活窗口时返回
type WindowNotFoundError struct {
	Query string
}

func (e *WindowNotFoundError) Error() string {
	return fmt.Sprintf("未找到窗口: %s", e.Query)
}

// IsWindowNotFound 判断错误是否为窗口未找到
func IsWindowNotFound(err error) bool {
	var target *WindowNotFoundError
	return errors.As(err, &target)
}
