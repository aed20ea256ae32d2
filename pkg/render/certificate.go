package render

import (
	"bytes"
	"context"
	"fmt"
	"smartlearn-backend/internal/domain"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	certWidth  = 1200
	certHeight = 850
)

type pngRenderer struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// NewPNGRenderer draws certificate artifacts as PNG images. Fonts are
// embedded, so rendering has no filesystem or network dependency.
func NewPNGRenderer() (domain.CertificateRenderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &pngRenderer{regular: regular, bold: bold}, nil
}

func (r *pngRenderer) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

func (r *pngRenderer) Render(ctx context.Context, data domain.CertificateData) ([]byte, string, error) {
	dc := gg.NewContext(certWidth, certHeight)

	// Background and double border
	dc.SetHexColor("#fdfbf7")
	dc.Clear()
	dc.SetHexColor("#1f3a5f")
	dc.SetLineWidth(6)
	dc.DrawRectangle(30, 30, certWidth-60, certHeight-60)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(44, 44, certWidth-88, certHeight-88)
	dc.Stroke()

	cx := float64(certWidth) / 2

	dc.SetFontFace(r.face(r.bold, 52))
	dc.SetHexColor("#1f3a5f")
	dc.DrawStringAnchored("Certificate of Completion", cx, 170, 0.5, 0.5)

	dc.SetFontFace(r.face(r.regular, 26))
	dc.SetHexColor("#555555")
	dc.DrawStringAnchored("This certifies that", cx, 280, 0.5, 0.5)

	dc.SetFontFace(r.face(r.bold, 44))
	dc.SetHexColor("#222222")
	dc.DrawStringAnchored(data.StudentName, cx, 360, 0.5, 0.5)

	dc.SetFontFace(r.face(r.regular, 26))
	dc.SetHexColor("#555555")
	dc.DrawStringAnchored("has successfully completed the course", cx, 440, 0.5, 0.5)

	dc.SetFontFace(r.face(r.bold, 36))
	dc.SetHexColor("#1f3a5f")
	dc.DrawStringAnchored(data.CourseTitle, cx, 520, 0.5, 0.5)

	dc.SetFontFace(r.face(r.regular, 22))
	dc.SetHexColor("#777777")
	issued := data.IssueDate.Format("January 2, 2006")
	dc.DrawStringAnchored("Issued on "+issued, cx, 640, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to encode certificate: %w", err)
	}
	return buf.Bytes(), "image/png", nil
}
