package utils

import (
	"errors"

	"github.com/studykit/flashcard-backend/services"
)

// GetInputTypeFromExt maps a file extension to the extraction input type.
func GetInputTypeFromExt(ext string) (services.InputType, error) {
	switch ext {
	case ".pdf":
		return services.InputPDF, nil
	case ".docx":
		return services.InputDOCX, nil
	case ".txt":
		return services.InputTXT, nil
	default:
		return "", errors.New("unsupported file format")
	}
}
