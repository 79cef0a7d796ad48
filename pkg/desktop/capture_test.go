package desktop

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestPadRegion 测试截图区域扩展与边界收敛
func TestPadRegion(t *testing.T) {
	screen := Region{X: 0, Y: 0, Width: 1920, Height: 1080}

	cases := []struct {
		name    string
		region  Region
		padding int
		want    Region
	}{
		{
			name:    "零扩展保持原区域",
			region:  Region{X: 100, Y: 200, Width: 300, Height: 400},
			padding: 0,
			want:    Region{X: 100, Y: 200, Width: 300, Height: 400},
		},
		{
			name:    "四周各扩展10像素",
			region:  Region{X: 100, Y: 200, Width: 300, Height: 400},
			padding: 10,
			want:    Region{X: 90, Y: 190, Width: 320, Height: 420},
		},
		{
			name:    "左上角收敛到屏幕原点",
			region:  Region{X: 5, Y: 3, Width: 100, Height: 100},
			padding: 10,
			want:    Region{X: 0, Y: 0, Width: 115, Height: 113},
		},
		{
			name:    "右下角收敛到屏幕边界",
			region:  Region{X: 1800, Y: 1000, Width: 100, Height: 70},
			padding: 50,
			want:    Region{X: 1750, Y: 950, Width: 170, Height: 130},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := padRegion(tc.region, tc.padding, screen)
			if got != tc.want {
				t.Errorf("期望 %+v, 实际 %+v", tc.want, got)
			}
		})
	}
}

// TestPadRegionNoScreen 屏幕区域为空时只扩展不收敛
func TestPadRegionNoScreen(t *testing.T) {
	got := padRegion(Region{X: 100, Y: 100, Width: 50, Height: 50}, 20, Region{})
	want := Region{X: 80, Y: 80, Width: 90, Height: 90}
	if got != want {
		t.Errorf("期望 %+v, 实际 %+v", want, got)
	}
}

// TestRegionContains 区域包含判定为左闭右开
func TestRegionContains(t *testing.T) {
	r := Region{X: 100, Y: 200, Width: 300, Height: 400}

	inside := []Point{
		{100, 200},
		{399, 599},
		{250, 400},
	}
	for _, p := range inside {
		if !r.Contains(p.X, p.Y) {
			t.Errorf("(%d, %d) 应在区域内", p.X, p.Y)
		}
	}

	outside := []Point{
		{400, 599}, // 右边界外第一列
		{399, 600}, // 下边界外第一行
		{99, 200},
		{100, 199},
	}
	for _, p := range outside {
		if r.Contains(p.X, p.Y) {
			t.Errorf("(%d, %d) 不应在区域内", p.X, p.Y)
		}
	}
}

// TestCaptureWindowNegativePadding 负扩展像素应直接报错
func TestCaptureWindowNegativePadding(t *testing.T) {
	c := New()

	_, err := c.CaptureWindow(WindowHandle{PID: 1, Title: "any"}, WithPadding(-1))
	if err == nil {
		t.Fatal("负扩展像素应该返回错误")
	}
	if IsWindowNotFound(err) {
		t.Error("参数校验应先于窗口解析")
	}
	t.Logf("错误信息: %v", err)
}

// TestCaptureScreen 测试截屏功能
func TestCaptureScreen(t *testing.T) {
	c := New()

	img, err := c.CaptureScreen(0)
	if err != nil {
		t.Skipf("截屏失败 (可能需要屏幕录制权限或显示器): %v", err)
	}

	bounds := img.Bounds()
	t.Logf("截屏成功: %dx%d", bounds.Dx(), bounds.Dy())
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		t.Error("截屏尺寸为 0")
	}
}

// TestCaptureScreenVirtual 0 号显示器为所有显示器的并集区域
func TestCaptureScreenVirtual(t *testing.T) {
	c := New()

	img, err := c.CaptureScreen(0)
	if err != nil {
		t.Skipf("当前环境无法截屏: %v", err)
	}

	v := virtualScreen()
	if img.Bounds().Dx() != v.Width || img.Bounds().Dy() != v.Height {
		t.Errorf("全屏截图尺寸应为显示器并集 %dx%d, 实际 %dx%d",
			v.Width, v.Height, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

// TestCaptureScreenMonitorClamp 越界的显示器序号应收敛而不是报错
func TestCaptureScreenMonitorClamp(t *testing.T) {
	c := New()

	if _, err := c.CaptureScreen(1); err != nil {
		t.Skipf("当前环境无法截屏: %v", err)
	}

	img, err := c.CaptureScreen(9999)
	if err != nil {
		t.Fatalf("越界序号应收敛到有效显示器: %v", err)
	}
	t.Logf("收敛截屏成功: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
}

// TestSaveImage 测试图像保存
func TestSaveImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 4), uint8(y * 5), 128, 255})
		}
	}

	tempDir := t.TempDir()
	for _, name := range []string{"out.png", "out.jpg"} {
		path := filepath.Join(tempDir, name)
		if err := SaveImage(img, path); err != nil {
			t.Fatalf("保存 %s 失败: %v", name, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("打开 %s 失败: %v", name, err)
		}
		decoded, format, err := image.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("解码 %s 失败: %v", name, err)
		}
		if decoded.Bounds().Dx() != 64 || decoded.Bounds().Dy() != 48 {
			t.Errorf("%s 尺寸不符: %v", name, decoded.Bounds())
		}
		t.Logf("%s 保存并解码成功, 格式=%s", name, format)
	}

	if err := SaveImage(nil, filepath.Join(tempDir, "nil.png")); err == nil {
		t.Error("空图像应该返回错误")
	}
}

// TestImageToBase64 测试图像 Base64 编码
func TestImageToBase64(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	s, err := ImageToBase64(img, "png", 0)
	if err != nil {
		t.Fatalf("PNG 编码失败: %v", err)
	}
	if !strings.HasPrefix(s, "data:image/png;base64,") {
		t.Errorf("PNG data URI 前缀不符: %.40s", s)
	}

	s, err = ImageToBase64(img, "", 80)
	if err != nil {
		t.Fatalf("默认格式编码失败: %v", err)
	}
	if !strings.HasPrefix(s, "data:image/jpeg;base64,") {
		t.Errorf("JPEG data URI 前缀不符: %.40s", s)
	}

	if _, err := ImageToBase64(img, "bmp", 80); err == nil {
		t.Error("不支持的格式应该返回错误")
	}
	if _, err := ImageToBase64(nil, "png", 80); err == nil {
		t.Error("空图像应该返回错误")
	}
}

// TestDrawMarker 测试截图标注
func TestDrawMarker(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}

	center := Point{X: 50, Y: 50}
	marked := DrawMarker(img, center, "press")

	r, g, b, _ := marked.At(50, 50).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("标记中心应为红色, 实际 RGB=(%d,%d,%d)", r>>8, g>>8, b>>8)
	}

	// 原图不应被修改
	r, g, b, _ = img.At(50, 50).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Error("DrawMarker 应返回副本而不是修改原图")
	}
}
