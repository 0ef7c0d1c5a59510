package chart

import (
	"bytes"
	"testing"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func TestRenderGoals(t *testing.T) {
	image, err := RenderGoals(800, 3100, 450.5, 1978, 45, 30)
	if err != nil {
		t.Fatalf("RenderGoals: %v", err)
	}
	if !bytes.HasPrefix(image, pngSignature) {
		t.Error("output is not a PNG image")
	}
}

func TestRenderGoalsFreshProfile(t *testing.T) {
	// Сразу после создания профиля все счетчики нулевые
	image, err := RenderGoals(0, 3100, 0, 1978, 0, 30)
	if err != nil {
		t.Fatalf("RenderGoals: %v", err)
	}
	if !bytes.HasPrefix(image, pngSignature) {
		t.Error("output is not a PNG image")
	}
}
