// Package playlist keeps the background music state: track list, current track,
// play flag and volume. Audio output lives in the viewer.
package playlist

import (
	"path"
	"strings"
)

// Playlist is the player state. The zero value is an empty, stopped playlist.
type Playlist struct {
	tracks  []string
	current int
	playing bool
	volume  float32
}

// New returns a stopped playlist at volume.
func New(tracks []string, volume float32) *Playlist {
	p := &Playlist{tracks: append([]string(nil), tracks...)}
	p.SetVolume(volume)
	return p
}

// Len returns the number of tracks.
func (p *Playlist) Len() int { return len(p.tracks) }

// Tracks returns the track sources in play order.
func (p *Playlist) Tracks() []string { return p.tracks }

// Current returns the current track index, or -1 when the list is empty.
func (p *Playlist) Current() int {
	if len(p.tracks) == 0 {
		return -1
	}
	return p.current
}

// Track returns the current track source.
func (p *Playlist) Track() string {
	if len(p.tracks) == 0 {
		return ""
	}
	return p.tracks[p.current]
}

// Playing reports whether playback is on.
func (p *Playlist) Playing() bool { return p.playing }

// Volume returns the volume in [0,1].
func (p *Playlist) Volume() float32 { return p.volume }

// SetVolume clamps v to [0,1].
func (p *Playlist) SetVolume(v float32) {
	switch {
	case v < 0 || v != v:
		v = 0
	case v > 1:
		v = 1
	}
	p.volume = v
}

// PlayIndex selects track i, wrapping out-of-range indices, and starts playback.
func (p *Playlist) PlayIndex(i int) {
	n := len(p.tracks)
	if n == 0 {
		return
	}
	p.current = ((i % n) + n) % n
	p.playing = true
}

// Next plays the following track.
func (p *Playlist) Next() { p.PlayIndex(p.current + 1) }

// Prev plays the preceding track.
func (p *Playlist) Prev() { p.PlayIndex(p.current - 1) }

// Toggle pauses or resumes the current track.
func (p *Playlist) Toggle() {
	if len(p.tracks) == 0 {
		return
	}
	p.playing = !p.playing
}

// Ended advances to the next track when the current one finishes.
func (p *Playlist) Ended() { p.Next() }

// Name is the display name of track i: base name without .mp3/.ogg, with
// dashes and underscores shown as spaces.
func (p *Playlist) Name(i int) string {
	if i < 0 || i >= len(p.tracks) {
		return ""
	}
	return NiceName(p.tracks[i])
}

// NiceName formats a track source for display.
func NiceName(src string) string {
	s := path.Base(strings.ReplaceAll(src, "\\", "/"))
	lower := strings.ToLower(s)
	for _, ext := range []string{".mp3", ".ogg"} {
		if strings.HasSuffix(lower, ext) {
			s = s[:len(s)-len(ext)]
			break
		}
	}
	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}
