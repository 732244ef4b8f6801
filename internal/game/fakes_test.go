package game

import "github.com/vovakirdan/birdfeed/internal/core"

// fakeRenderer records the calls made by the simulation.
type fakeRenderer struct {
	used        int // slots used per draw, 0 for the whole range
	draws       int
	hidden      []SlotRange
	scrolls     []int
	palettes    []core.Palette
	backgrounds []Background
	texts       map[[2]int][]string
}

func (r *fakeRenderer) LoadBackground(bg Background) {
	r.backgrounds = append(r.backgrounds, bg)
}

func (r *fakeRenderer) DrawSprite(slots SlotRange, _ Sprite, _, _ int, _ bool) int {
	r.draws++
	if r.used > 0 {
		return slots.Start + r.used
	}
	return slots.End
}

func (r *fakeRenderer) HideSprites(from, to int) {
	r.hidden = append(r.hidden, SlotRange{Start: from, End: to})
}

func (r *fakeRenderer) ScrollBackground(offsetY int) {
	r.scrolls = append(r.scrolls, offsetY)
}

func (r *fakeRenderer) SetTileText(x, y int, text string) {
	if r.texts == nil {
		r.texts = make(map[[2]int][]string)
	}
	key := [2]int{x, y}
	r.texts[key] = append(r.texts[key], text)
}

func (r *fakeRenderer) SetPalette(p core.Palette) {
	r.palettes = append(r.palettes, p)
}

type playedTone struct {
	ch     Channel
	freq   uint16
	length uint8
}

type fakeAudio struct {
	tones []playedTone
}

func (a *fakeAudio) PlayTone(ch Channel, _ Waveform, _ Envelope, freq uint16, length uint8) {
	a.tones = append(a.tones, playedTone{ch: ch, freq: freq, length: length})
}

func (a *fakeAudio) count(ch Channel) int {
	n := 0
	for _, t := range a.tones {
		if t.ch == ch {
			n++
		}
	}
	return n
}

// scriptRNG returns a fixed sequence of draws, then fallback forever.
type scriptRNG struct {
	draws    []int8
	fallback int8
	seeds    []byte
}

func (r *scriptRNG) Seed(entropy byte) {
	r.seeds = append(r.seeds, entropy)
}

func (r *scriptRNG) Next() int8 {
	if len(r.draws) == 0 {
		return r.fallback
	}
	v := r.draws[0]
	r.draws = r.draws[1:]
	return v
}
