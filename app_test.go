package corral

import "testing"

func TestAppLayoutIsFixed(t *testing.T) {
	app := NewApp(newTestGame(1), false)

	w, h := app.Layout(123, 456)
	if w != 960 || h != 640 {
		t.Errorf("Layout = %dx%d, want 960x640", w, h)
	}

	w, h = app.Layout(1920, 1080)
	if w != 960 || h != 640 {
		t.Errorf("Layout = %dx%d, want 960x640", w, h)
	}
}
