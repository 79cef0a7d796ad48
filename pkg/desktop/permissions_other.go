//go:build !darwin

package desktop

// CheckPermissions 检查所需权限
// 非 macOS 系统不需要额外授权。
func CheckPermissions() *PermissionStatus {
	return &PermissionStatus{
		Accessibility:   true,
		ScreenRecording: true,
		AllGranted:      true,
	}
}

// PermissionInstructions 缺少权限时的授权指引
func (s *PermissionStatus) PermissionInstructions() string {
	return ""
}
