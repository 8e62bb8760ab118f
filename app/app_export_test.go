package app

import (
	"testing"

	"sheetlens/app/session"
)

func TestMatrixTSV(t *testing.T) {
	matrix := [][]session.Cell{
		{"Name", "Score"},
		{"Ali", float64(5)},
		{"Reza", nil},
	}
	want := "Name\tScore\nAli\t5\nReza\t\n"
	if got := matrixTSV(matrix); got != want {
		t.Errorf("matrixTSV = %q, want %q", got, want)
	}
}

func TestSafeClipboardWriteSizeLimit(t *testing.T) {
	data := make([]byte, maxClipboardSize+1)
	if err := safeClipboardWrite(0, data); err == nil {
		t.Error("expected error for oversized clipboard payload")
	}
}
