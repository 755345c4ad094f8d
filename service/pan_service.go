package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"strings"

	"github.com/Aashish23092/pan-extraction-service/dto"
	"github.com/Aashish23092/pan-extraction-service/utils"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// TextExtractor produces raw text from uploaded image bytes. The production
// implementation is client.TesseractClient; tests inject stubs.
type TextExtractor interface {
	ExtractTextFromBytes(data []byte) (string, error)
}

// PANService turns an uploaded PAN card file into extracted fields. Text is
// acquired through a fallback ladder (PDF text layer, PDF page images through
// OCR, image OCR, QR code, raw byte decoding) and then handed to the parser.
// The ladder never fails: every rung logs and falls through, so extraction
// always returns a response, possibly with empty fields.
type PANService struct {
	ocr TextExtractor
	pdf PDFProcessor
}

func NewPANService(ocr TextExtractor, pdf PDFProcessor) *PANService {
	return &PANService{
		ocr: ocr,
		pdf: pdf,
	}
}

// ExtractFromFile resolves raw text from the upload and parses the PAN
// fields out of it.
func (s *PANService) ExtractFromFile(fileData []byte, mimeType string) *dto.PANExtractResponse {
	text := s.resolveText(fileData, mimeType)
	if strings.TrimSpace(text) == "" {
		log.Println("No text detected in uploaded PAN file")
	}

	parsed := utils.ParsePANText(text)

	return &dto.PANExtractResponse{
		Status:     "ok",
		PANNumber:  parsed.PAN,
		Name:       parsed.Name,
		FatherName: parsed.FatherName,
		DOB:        parsed.DOB,
		RawText:    parsed.RawText,
	}
}

// resolveText walks the text-source ladder for the upload. The parser never
// learns which rung produced the text.
func (s *PANService) resolveText(fileData []byte, mimeType string) string {
	if strings.Contains(strings.ToLower(mimeType), "pdf") {
		return s.resolvePDFText(fileData)
	}
	return s.resolveImageText(fileData)
}

func (s *PANService) resolvePDFText(fileData []byte) string {
	text, err := s.pdf.ExtractText(fileData)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		return text
	}

	// Scanned PDF: no text layer, OCR the embedded page images instead.
	if ocrText := s.ocrPDFPages(fileData); strings.TrimSpace(ocrText) != "" {
		return ocrText
	}

	return decodeRawBytes(fileData)
}

func (s *PANService) resolveImageText(fileData []byte) string {
	text, err := s.ocr.ExtractTextFromBytes(fileData)
	if err != nil {
		log.Printf("OCR extraction failed: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		return text
	}

	// Newer PAN cards carry a QR code; its payload is plain text the parser
	// can work with.
	qrText, err := s.decodeQRText(fileData)
	if err != nil {
		log.Printf("QR extraction failed or no QR found: %v", err)
	}
	if strings.TrimSpace(qrText) != "" {
		log.Println("Using QR code payload as text source")
		return qrText
	}

	return decodeRawBytes(fileData)
}

// ocrPDFPages extracts every embedded page image and concatenates the OCR
// output of each.
func (s *PANService) ocrPDFPages(fileData []byte) string {
	images, err := s.pdf.ExtractImages(fileData)
	if err != nil {
		log.Printf("Failed to extract images from PDF: %v", err)
		return ""
	}

	var fullText strings.Builder
	for idx, page := range images {
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, page); err != nil {
			log.Printf("Failed to encode page %d: %v", idx+1, err)
			continue
		}

		pageText, err := s.ocr.ExtractTextFromBytes(buf.Bytes())
		if err != nil {
			log.Printf("Page %d OCR failed: %v", idx+1, err)
			continue
		}

		fullText.WriteString(pageText)
		fullText.WriteString("\n")
	}
	return fullText.String()
}

func (s *PANService) decodeQRText(fileData []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	return result.GetText(), nil
}

// decodeRawBytes is the last rung: best-effort interpretation of the upload
// as UTF-8 text. Never errors; undecodable bytes are dropped.
func decodeRawBytes(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}
