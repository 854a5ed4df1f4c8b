package clipboard

import "testing"

func TestCopyRejectsEmpty(t *testing.T) {
	if err := Copy(""); err == nil {
		t.Error("Copy(\"\"): expected error for empty text")
	}
}
