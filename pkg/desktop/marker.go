package desktop

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const (
	markerRadius   = 8
	markerFontSize = 14.0
)

// 标注用字体，首次使用时加载
var markerFont *truetype.Font

// loadMarkerFont 按平台常见路径加载标注字体，找不到时返回 nil
func loadMarkerFont() *truetype.Font {
	if markerFont != nil {
		return markerFont
	}

	fontPaths := []string{
		// macOS
		"/System/Library/Fonts/Helvetica.ttc",
		"/Library/Fonts/Arial Unicode.ttf",
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\msyh.ttc",
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}

	for _, path := range fontPaths {
		fontBytes, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(fontBytes)
		if err != nil {
			continue
		}
		markerFont = f
		return f
	}
	return nil
}

// DrawMarker 在图像上绘制十字标记和文字标签，返回标注后的副本
// pt 为图像内坐标；label 为空或字体缺失时只画十字。
func DrawMarker(img image.Image, pt Point, label string) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	markerColor := color.RGBA{255, 0, 0, 255}
	drawCross(rgba, pt, markerRadius, markerColor)

	if label != "" {
		drawLabel(rgba, pt.X+markerRadius+2, pt.Y-markerRadius, label, markerColor)
	}

	return rgba
}

// drawCross 绘制十字标记
func drawCross(img *image.RGBA, center Point, radius int, col color.Color) {
	bounds := img.Bounds()
	for d := -radius; d <= radius; d++ {
		x := center.X + d
		if x >= bounds.Min.X && x < bounds.Max.X && center.Y >= bounds.Min.Y && center.Y < bounds.Max.Y {
			img.Set(x, center.Y, col)
		}
		y := center.Y + d
		if center.X >= bounds.Min.X && center.X < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.Set(center.X, y, col)
		}
	}
}

// drawLabel 在图像上绘制文字
func drawLabel(img *image.RGBA, x, y int, text string, col color.Color) {
	f := loadMarkerFont()
	if f == nil {
		// 字体加载失败，回退到不绘制
		return
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(markerFontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(col))
	c.SetHinting(font.HintingFull)

	pt := freetype.Pt(x, y+int(c.PointToFixed(markerFontSize)>>6))
	c.DrawString(text, pt)
}
