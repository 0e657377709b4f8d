package services

import "errors"

type InputType string

const (
	InputPDF  InputType = "pdf"
	InputDOCX InputType = "docx"
	InputTXT  InputType = "txt"
)

// NormalizeInput turns an uploaded document into plain text. The file is
// expected to already sit in the caller's scratch directory; cleanup of
// that directory is the caller's business.
func NormalizeInput(inputType InputType, path string) (string, error) {
	switch inputType {
	case InputPDF:
		return ExtractTextFromPDF(path)
	case InputDOCX:
		return ExtractTextFromDOCX(path)
	case InputTXT:
		return ExtractTextFromTXT(path)
	default:
		return "", errors.New("unsupported input type")
	}
}
