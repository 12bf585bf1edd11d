package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// CertificateData reúne tudo que o PDF do certificado precisa.
type CertificateData struct {
	UserName         string
	UserEmail        string
	Score            float64
	TotalQuestions   int
	CorrectAnswers   int
	IssuedAt         time.Time
	VerificationCode string
}

// Renderer é a assinatura usada pelo service de certificados.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// Render monta o certificado em paisagem A4 e devolve os bytes do PDF.
func (r *Renderer) Render(data CertificateData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Certificado - Combate à Dengue", true)
	pdf.AddPage()

	// moldura
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(30, 90, 160)
	pdf.Rect(8, 8, 281, 194, "D")

	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetTextColor(30, 90, 160)
	pdf.CellFormat(0, 40, "CERTIFICADO", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 10, "Certificamos que", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 16, data.UserName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 9, "concluiu com aproveitamento o questionário educativo", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 9, "sobre prevenção e combate à dengue", "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 10,
		fmt.Sprintf("Nota: %.1f%%  (%d de %d questões corretas)", data.Score, data.CorrectAnswers, data.TotalQuestions),
		"", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7,
		fmt.Sprintf("Emitido em %s para %s", data.IssuedAt.Format("02/01/2006"), data.UserEmail),
		"", 1, "C", false, 0, "")

	pdf.SetFont("Courier", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 7,
		fmt.Sprintf("Código de verificação: %s", data.VerificationCode),
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
