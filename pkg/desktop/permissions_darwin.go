//go:build darwin

package desktop

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework ApplicationServices -framework CoreGraphics
#import <Cocoa/Cocoa.h>
#import <ApplicationServices/ApplicationServices.h>
#import <CoreGraphics/CoreGraphics.h>

// 检查辅助功能权限（不触发系统弹窗）
int deskautoCheckAccessibility() {
    NSDictionary *options = @{(__bridge NSString *)kAXTrustedCheckOptionPrompt: @NO};
    return AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options) ? 1 : 0;
}

// 检查屏幕录制权限
// 没有权限时 CGWindowListCopyWindowInfo 返回的窗口名称会被隐藏
int deskautoCheckScreenRecording() {
    if (@available(macOS 10.15, *)) {
        CFArrayRef windowList = CGWindowListCopyWindowInfo(
            kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
            kCGNullWindowID
        );
        if (windowList == NULL) {
            return 0;
        }

        CFIndex count = CFArrayGetCount(windowList);
        int hasNames = 0;
        for (CFIndex i = 0; i < count; i++) {
            CFDictionaryRef window = (CFDictionaryRef)CFArrayGetValueAtIndex(windowList, i);
            CFStringRef name = (CFStringRef)CFDictionaryGetValue(window, kCGWindowName);
            if (name != NULL && CFStringGetLength(name) > 0) {
                hasNames = 1;
                break;
            }
        }
        CFRelease(windowList);

        return (count == 0 || hasNames) ? 1 : 0;
    }
    return 1;
}
*/
import "C"

// CheckPermissions 检查鼠标键盘控制和截屏所需的系统权限（不触发弹窗）
func CheckPermissions() *PermissionStatus {
	accessibility := C.deskautoCheckAccessibility() == 1
	screenRecording := C.deskautoCheckScreenRecording() == 1

	return &PermissionStatus{
		Accessibility:   accessibility,
		ScreenRecording: screenRecording,
		AllGranted:      accessibility && screenRecording,
	}
}

// PermissionInstructions 缺少权限时的授权指引
func (s *PermissionStatus) PermissionInstructions() string {
	if s.AllGranted {
		return ""
	}

	msg := "需要授权以下权限才能正常工作:\n"
	if !s.Accessibility {
		msg += "  辅助功能 (控制鼠标/键盘): 系统设置 > 隐私与安全性 > 辅助功能\n"
	}
	if !s.ScreenRecording {
		msg += "  屏幕录制 (用于截屏): 系统设置 > 隐私与安全性 > 屏幕录制\n"
	}
	msg += "授权后需要重启应用才能生效。"
	return msg
}
