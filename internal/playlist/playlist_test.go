package playlist

import "testing"

func TestPlayIndexWraps(t *testing.T) {
	p := New([]string{"a.mp3", "b.mp3", "c.ogg"}, 0.6)
	cases := []struct {
		in, want int
	}{
		{0, 0},
		{3, 0},
		{-1, 2},
		{7, 1},
	}
	for _, c := range cases {
		p.PlayIndex(c.in)
		if p.Current() != c.want || !p.Playing() {
			t.Fatalf("PlayIndex(%d): current %d playing %v, want %d", c.in, p.Current(), p.Playing(), c.want)
		}
	}
}

func TestNextPrevEndedAndToggle(t *testing.T) {
	p := New([]string{"a.mp3", "b.mp3"}, 0.6)
	if p.Playing() {
		t.Fatalf("new playlist is playing")
	}
	p.Toggle()
	if !p.Playing() || p.Track() != "a.mp3" {
		t.Fatalf("toggle did not start the first track")
	}
	p.Ended()
	if p.Track() != "b.mp3" {
		t.Fatalf("ended did not advance: %s", p.Track())
	}
	p.Next()
	if p.Current() != 0 {
		t.Fatalf("next did not wrap: %d", p.Current())
	}
	p.Prev()
	if p.Current() != 1 {
		t.Fatalf("prev did not wrap: %d", p.Current())
	}
	p.Toggle()
	if p.Playing() {
		t.Fatalf("toggle did not pause")
	}
}

func TestEmptyPlaylist(t *testing.T) {
	p := New(nil, 2)
	p.Next()
	p.Toggle()
	if p.Current() != -1 || p.Playing() || p.Track() != "" {
		t.Fatalf("empty playlist changed state")
	}
	if p.Volume() != 1 {
		t.Fatalf("volume not clamped: %v", p.Volume())
	}
}

func TestNiceName(t *testing.T) {
	cases := map[string]string{
		"music/night_walk-01.mp3": "night walk 01",
		"Rain-On-Glass.OGG":       "Rain On Glass",
		"loop.wav":                "loop.wav",
	}
	for in, want := range cases {
		if got := NiceName(in); got != want {
			t.Fatalf("NiceName(%q) = %q want %q", in, got, want)
		}
	}
}
