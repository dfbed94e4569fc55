package render

import (
	"fmt"

	"cityscape/internal/logger"
	"cityscape/internal/playlist"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Music streams the playlist's current track. The playlist decides what
// plays; Update keeps the raylib stream in step with it.
type Music struct {
	List *playlist.Playlist

	stream rl.Music
	loaded string
	ok     bool
	failed map[string]bool
	log    *logger.Logger
}

// NewMusic wraps list. The audio device must be open before Update is called.
func NewMusic(list *playlist.Playlist, log *logger.Logger) *Music {
	return &Music{List: list, failed: make(map[string]bool), log: log}
}

// Update loads, pauses, resumes and advances the stream. Call once per frame.
func (m *Music) Update() {
	if m.List == nil || m.List.Len() == 0 {
		return
	}
	want := ""
	if m.List.Playing() {
		want = m.List.Track()
	}
	if want != "" && want != m.loaded {
		m.load(want)
	}
	if !m.ok {
		return
	}
	rl.SetMusicVolume(m.stream, m.List.Volume())
	switch {
	case m.List.Playing() && !rl.IsMusicStreamPlaying(m.stream):
		rl.ResumeMusicStream(m.stream)
	case !m.List.Playing() && rl.IsMusicStreamPlaying(m.stream):
		rl.PauseMusicStream(m.stream)
	}
	if !m.List.Playing() {
		return
	}
	rl.UpdateMusicStream(m.stream)
	length := rl.GetMusicTimeLength(m.stream)
	if length > 0 && rl.GetMusicTimePlayed(m.stream) >= length-0.05 {
		m.List.Ended()
		m.loaded = "" // reload even when the list wraps to the same track
	}
}

func (m *Music) load(track string) {
	m.unload()
	m.loaded = track
	if m.failed[track] {
		m.skip()
		return
	}
	s := rl.LoadMusicStream(track)
	if !rl.IsMusicValid(s) {
		m.failed[track] = true
		m.log.Logf("render: could not open track %s, skipping", track)
		m.skip()
		return
	}
	s.Looping = false
	rl.PlayMusicStream(s)
	m.stream, m.ok = s, true
}

// skip moves past an unplayable track, or stops when none can play.
func (m *Music) skip() {
	if len(m.failed) >= m.List.Len() {
		if m.List.Playing() {
			m.List.Toggle()
		}
		return
	}
	m.List.Ended()
}

func (m *Music) unload() {
	if m.ok {
		rl.StopMusicStream(m.stream)
		rl.UnloadMusicStream(m.stream)
	}
	m.ok = false
	m.loaded = ""
}

// Lines describes the player for the overlay strip.
func (m *Music) Lines() []string {
	if m.List == nil || m.List.Len() == 0 {
		return nil
	}
	state := "paused"
	if m.List.Playing() {
		state = "playing"
	}
	cur := m.List.Current()
	return []string{
		fmt.Sprintf("%s  %d/%d  %s", m.List.Name(cur), cur+1, m.List.Len(), state),
		fmt.Sprintf("vol %d%%   [M] play/pause  [N] next  [B] back", int(m.List.Volume()*100+0.5)),
	}
}

// Unload stops and frees the stream.
func (m *Music) Unload() {
	m.unload()
}
