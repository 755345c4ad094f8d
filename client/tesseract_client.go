package client

import (
	"fmt"
	"log"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs Tesseract OCR over uploaded image bytes. It is the
// default text source for the PAN service; callers must treat failures as
// "no text" and fall back, not as fatal errors.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// ExtractTextFromBytes runs OCR over raw image bytes and returns the
// recognized text.
func (tc *TesseractClient) ExtractTextFromBytes(data []byte) (string, error) {
	tempFile, err := tc.writeTempFile(data)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile)

	return tc.extractText(tempFile)
}

// writeTempFile stores upload bytes on disk; gosseract reads images by path.
func (tc *TesseractClient) writeTempFile(data []byte) (string, error) {
	tempFile, err := os.CreateTemp("", "pan-ocr-*")
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if _, err := tempFile.Write(data); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

func (tc *TesseractClient) extractText(filePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)

	if err := client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
